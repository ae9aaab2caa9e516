package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedFileTypes maps FileType to its MIME content type. It is the single
// source of truth for upload validation; the lookup maps below derive from it.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{}

func init() {
	for ft, ct := range AllowedFileTypes {
		AllowedContentTypes[ct] = ft
		AllowedExtensions[string(ft)] = ft
	}
}

// Supplier is an advisory label inferred from vendor-name keywords in the
// document text. It is surfaced in the ledger and never affects naming.
type Supplier string

const (
	SupplierCoronaEnergy  Supplier = "Corona Energy"
	SupplierBritishGas    Supplier = "British Gas"
	SupplierEDF           Supplier = "EDF Energy"
	SupplierEONNext       Supplier = "E.ON Next"
	SupplierOctopus       Supplier = "Octopus Energy"
	SupplierTotalEnergies Supplier = "TotalEnergies"
	SupplierSSE           Supplier = "SSE Energy"
	SupplierScottishPower Supplier = "ScottishPower"
	SupplierOpusEnergy    Supplier = "Opus Energy"
)
