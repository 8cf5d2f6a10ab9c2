package importer

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// isbn13Re matches the 13-digit codes book barcodes carry.
var isbn13Re = regexp.MustCompile(`^97[89][0-9]{10}$`)

// IsISBN13 reports whether code is a 13-digit ISBN (978/979 prefix).
func IsISBN13(code string) bool {
	return isbn13Re.MatchString(code)
}

// ExtractISBN strips everything but digits from a scanned line and
// returns the result if it is an ISBN-13.
func ExtractISBN(line string) (string, bool) {
	var b strings.Builder
	for _, r := range line {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	code := b.String()
	if !IsISBN13(code) {
		return "", false
	}
	return code, true
}

// ReadScans consumes scanner input line by line (a USB barcode wedge
// types the code and a newline). Lines that are not ISBN-13 codes are
// silently skipped; handle is called for each accepted code and may
// return io.EOF to stop the loop.
func ReadScans(r io.Reader, handle func(isbn string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		code, ok := ExtractISBN(sc.Text())
		if !ok {
			continue
		}
		if err := handle(code); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
	return sc.Err()
}
