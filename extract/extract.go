// This file is part of docjoy.
//
// docjoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// docjoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with docjoy.  If not, see <https://www.gnu.org/licenses/>.

// Package extract reads the raw text of a source document. PDF files are read
// page by page with the ledongthuc/pdf package. Any other file is treated as
// plain text.
//
// Layout is not preserved. The text is only ever used as a stream of
// characters.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/docjoy/docjoy/curated"
	"github.com/docjoy/docjoy/logger"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// IsPDF returns true if the filename has the PDF extension.
func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// Text returns the text of the document.
func Text(filename string) (string, error) {
	st, err := os.Stat(filename)
	if err != nil {
		return "", curated.Errorf("extract: %v", curated.Errorf(curated.IOError, filename, err))
	}
	if st.IsDir() {
		return "", curated.Errorf("extract: %v", curated.Errorf(curated.IOError, filename, "is a directory"))
	}

	if IsPDF(filename) {
		return pdfText(filename)
	}
	return plainText(filename)
}

// plainText reads the file as UTF-8. a byte order mark is removed and a UTF-16
// byte order mark switches decoding to UTF-16. invalid bytes are decoded as
// the unicode replacement character, which is not in any mapping table
func plainText(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", curated.Errorf("extract: %v", curated.Errorf(curated.IOError, filename, err))
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return "", curated.Errorf("extract: %v", curated.Errorf(curated.IOError, filename, err))
	}

	txt := string(b)
	if n := strings.Count(txt, string(utf8.RuneError)); n > 0 {
		logger.Logf(logger.Allow, "extract", "%s: %d invalid UTF-8 sequences", filename, n)
	}

	logger.Logf(logger.Allow, "extract", "%s: %d bytes of text", filename, len(b))

	return txt, nil
}

// pdfText concatenates the plain text of every page. pages are separated by a
// newline so that the last word of a page is not joined to the first word of
// the next page
func pdfText(filename string) (txt string, err error) {
	// the pdf package panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			txt = ""
			err = curated.Errorf("extract: %v", curated.Errorf(curated.FormatError,
				fmt.Sprintf("%s: %v", filename, r)))
		}
	}()

	f, rdr, err := pdf.Open(filename)
	if err != nil {
		return "", curated.Errorf("extract: %v", curated.Errorf(curated.FormatError,
			fmt.Sprintf("%s: %v", filename, err)))
	}
	defer f.Close()

	var s strings.Builder
	var pages int

	for i := 1; i <= rdr.NumPage(); i++ {
		page := rdr.Page(i)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", curated.Errorf("extract: %v", curated.Errorf(curated.FormatError,
				fmt.Sprintf("%s: page %d: %v", filename, i, err)))
		}
		if strings.TrimSpace(content) == "" {
			continue
		}

		if s.Len() > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(content)
		pages++
	}

	if s.Len() == 0 {
		return "", curated.Errorf("extract: %v", curated.Errorf(curated.EmptyInputError,
			fmt.Sprintf("%s: no text could be extracted. the file may be image based or encrypted", filename)))
	}

	logger.Logf(logger.Allow, "extract", "%s: text from %d of %d pages", filename, pages, rdr.NumPage())

	return s.String(), nil
}
