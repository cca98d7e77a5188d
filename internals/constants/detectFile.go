package constants

import (
	"path/filepath"
	"strings"
)

// IsCSVFile: cek ekstensi file upload import. Hanya .csv yang diterima;
// isi file tetap divalidasi lagi oleh parser.
func IsCSVFile(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".csv"
}
