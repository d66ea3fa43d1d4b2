package lease

import "fmt"

// tenantNamePrompt asks a flash-class model for a single company name with
// no surrounding commentary.
const tenantNamePrompt = `Generate a single, realistic, and unique company name for a business that would lease land.
Examples: 'Apex Logistics', 'Greenfield Innovations', 'Starlight Developments'.
Do not add any commentary, just the company name itself.`

// agreementTemplate is the full document-generation prompt. The landlord is
// fixed; the tenant name is interpolated in the instructions, the parties
// section, and the signature block.
const agreementTemplate = `Please act as a legal document assistant. Your task is to generate a complete Land Lease Agreement. Just generate the agreement
but do not add any extra commentary.

**Instructions:**
1.  The **Landlord** is **Cymbal**.
2.  The **Tenant** is **%[1]s**.
3.  Fill in all placeholders like dates, addresses, monetary values, and property descriptions with realistic, synthetic data.
4.  The property should be a vacant lot suitable for commercial or industrial use.
5.  The lease term should be between 5 and 15 years
6.  The final output should be a complete, well-formatted document.
7.  The end lease date should be after the start date

--- START OF DOCUMENT TEMPLATE ---

LAND LEASE AGREEMENT

**1. PARTIES**
This Land Lease Agreement ("Agreement") is made and entered into on [Effective Date], by and between:
**Landlord:** Cymbal, with a principal place of business at [Landlord's Address].
**Tenant:** %[1]s, with a principal place of business at [Tenant's Address].

**2. PROPERTY DESCRIPTION**
The Landlord agrees to lease to the Tenant the real property located at [Property Address], consisting of approximately [Number] acres, further described as [Legal Description of Property] (the "Property").

**3. TERM OF LEASE**
The term of this lease shall be [Number] years, commencing on [Start Date] and terminating on [End Date].

**4. RENT**
The Tenant shall pay the Landlord an annual rent of $[Amount] USD, payable in equal monthly installments of $[Amount/12] USD.
The first payment is due on [Start Date] and subsequent payments are due on the first day of each month thereafter.

**5. USE OF PROPERTY**
The Tenant is permitted to use the Property solely for the purpose of [Permitted Use, e.g., 'developing a commercial warehouse', 'operating a logistics hub', 'installing a solar farm']. Any other use requires the prior written consent of the Landlord.

**6. IMPROVEMENTS & UTILITIES**
Tenant may construct improvements on the property with the Landlord's prior written consent. All utilities, including but not limited to water, sewer, gas, and electricity, shall be the sole responsibility of the Tenant.

**7. MAINTENANCE AND REPAIRS**
The Tenant shall, at its own expense, maintain the Property in good and safe condition.

**8. INSURANCE AND INDEMNIFICATION**
The Tenant shall procure and maintain a commercial general liability insurance policy with a minimum coverage of $[Amount, e.g., '2,000,000'] per occurrence. The Tenant agrees to indemnify and hold harmless the Landlord from any and all claims arising from the Tenant's use of the Property.

**9. GOVERNING LAW**
This Agreement shall be governed by and construed in accordance with the laws of the State of [State, e.g., 'California'].

**10. SIGNATURES**
IN WITNESS WHEREOF, the parties have executed this Agreement as of the Effective Date.

**LANDLORD:**

_________________________
Cymbal
By: [Name of Signatory], [Title]

**TENANT:**

_________________________
%[1]s
By: [Name of Signatory], [Title]`

// agreementPrompt fills the template with the tenant's name.
func agreementPrompt(tenantName string) string {
	return fmt.Sprintf(agreementTemplate, tenantName)
}
