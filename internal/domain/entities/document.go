package entities

import "time"

// DocumentType is the key naming a single document slot on a vendor record
type DocumentType string

// Identity proof slots (mutually exclusive, any one required)
const (
	DocAadhaar        DocumentType = "aadhaar_document"
	DocPAN            DocumentType = "pan_document"
	DocPassport       DocumentType = "passport_document"
	DocVoterID        DocumentType = "voter_id_document"
	DocDrivingLicense DocumentType = "driving_license_document"
)

// Address proof slots (mutually exclusive, any one required)
const (
	DocAddressAadhaar         DocumentType = "address_proof_aadhaar"
	DocAddressPassport        DocumentType = "address_proof_passport"
	DocAddressVoterID         DocumentType = "address_proof_voter_id"
	DocAddressDrivingLicense  DocumentType = "address_proof_driving_license"
	DocAddressElectricityBill DocumentType = "address_proof_electricity_bill"
	DocAddressWaterGasBill    DocumentType = "address_proof_water_gas_bill"
	DocAddressBankStatement   DocumentType = "address_proof_bank_statement"
)

// Independent slots (no mutual exclusion)
const (
	DocPassportPhoto         DocumentType = "passport_photo"
	DocLiveSelfie            DocumentType = "live_selfie"
	DocGSTCertificate        DocumentType = "gst_certificate"
	DocPartnershipDeed       DocumentType = "partnership_deed"
	DocIncorporationCert     DocumentType = "certificate_of_incorporation"
	DocMemorandumArticles    DocumentType = "memorandum_articles"
	DocShopEstablishment     DocumentType = "shop_establishment_certificate"
	DocCollegeID             DocumentType = "college_id_document"
	DocLocalAddressProof     DocumentType = "local_address_proof"
	DocGuardiansKYC          DocumentType = "guardians_kyc_documents"
	DocBirthCertificate      DocumentType = "birth_certificate_document"
	DocVisa                  DocumentType = "visa_document"
	DocOCICard               DocumentType = "oci_card_document"
	DocOverseasAddressProof  DocumentType = "overseas_address_proof"
	DocFATCADeclaration      DocumentType = "fatca_declaration_document"
)

// DocumentCategory groups slots among which at most one may be populated
type DocumentCategory string

const (
	CategoryIdentityProof DocumentCategory = "identity_proof"
	CategoryAddressProof  DocumentCategory = "address_proof"
	// CategoryNone marks independent slots
	CategoryNone DocumentCategory = ""
)

// exclusiveCategories expresses the mutual-exclusion rule once, as data
var exclusiveCategories = map[DocumentCategory][]DocumentType{
	CategoryIdentityProof: {
		DocAadhaar, DocPAN, DocPassport, DocVoterID, DocDrivingLicense,
	},
	CategoryAddressProof: {
		DocAddressAadhaar, DocAddressPassport, DocAddressVoterID,
		DocAddressDrivingLicense, DocAddressElectricityBill,
		DocAddressWaterGasBill, DocAddressBankStatement,
	},
}

var independentSlots = []DocumentType{
	DocPassportPhoto, DocLiveSelfie,
	DocGSTCertificate, DocPartnershipDeed, DocIncorporationCert,
	DocMemorandumArticles, DocShopEstablishment,
	DocCollegeID, DocLocalAddressProof,
	DocGuardiansKYC, DocBirthCertificate,
	DocVisa, DocOCICard, DocOverseasAddressProof, DocFATCADeclaration,
}

var categoryBySlot = func() map[DocumentType]DocumentCategory {
	m := make(map[DocumentType]DocumentCategory)
	for cat, slots := range exclusiveCategories {
		for _, s := range slots {
			m[s] = cat
		}
	}
	for _, s := range independentSlots {
		m[s] = CategoryNone
	}
	return m
}()

// AllDocumentTypes returns every known slot key in a stable order
func AllDocumentTypes() []DocumentType {
	all := make([]DocumentType, 0, len(categoryBySlot))
	all = append(all, exclusiveCategories[CategoryIdentityProof]...)
	all = append(all, exclusiveCategories[CategoryAddressProof]...)
	all = append(all, independentSlots...)
	return all
}

// Valid reports whether t names a known document slot
func (t DocumentType) Valid() bool {
	_, ok := categoryBySlot[t]
	return ok
}

// Category returns the exclusion category of the slot, CategoryNone for
// independent slots
func (t DocumentType) Category() DocumentCategory {
	return categoryBySlot[t]
}

// Siblings returns the other slots in the same exclusive category. Independent
// slots have no siblings.
func (t DocumentType) Siblings() []DocumentType {
	cat, ok := categoryBySlot[t]
	if !ok || cat == CategoryNone {
		return nil
	}
	var out []DocumentType
	for _, s := range exclusiveCategories[cat] {
		if s != t {
			out = append(out, s)
		}
	}
	return out
}

// Document represents one populated slot on a vendor record
type Document struct {
	VendorID   string       `json:"vendorId"`
	DocType    DocumentType `json:"docType"`
	FilePath   string       `json:"filePath"`
	UploadedAt time.Time    `json:"uploadedAt"`
}
