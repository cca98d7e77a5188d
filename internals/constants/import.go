package constants

// Batas & aturan pipeline import kontak
const (
	// Jumlah maksimal contoh error yang dikembalikan di summary import
	ImportMaxErrorDetails = 10

	// Rentang tahun artikel yang diterima
	ContactYearMin = 1900
	ContactYearMax = 2100
)

// Header CSV wajib untuk import (dicocokkan case-insensitive + trim)
var ImportRequiredHeaders = []string{"name", "email"}

// Header CSV opsional yang dikenali
var ImportOptionalHeaders = []string{"phone", "article_title", "year"}

// Urutan kolom CSV export (kontrak tetap)
var ExportColumns = []string{"name", "email", "phone", "article_title", "year"}
