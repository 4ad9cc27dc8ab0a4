package cv

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"code.sajari.com/docconv"
)

// Parser extracts plain text from uploaded resume documents.
type Parser struct {
	uploadsDir string
}

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

func NewParser(uploadsDir string) *Parser {
	return &Parser{uploadsDir: uploadsDir}
}

// ExtractText saves the upload under the uploads dir and converts it to
// plain text. Returns an error when the document yields no text at all.
func (p *Parser) ExtractText(filename string, reader io.Reader) (string, error) {
	if err := os.MkdirAll(p.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), unsafeFilenameRe.ReplaceAllString(filename, "_"))
	filePath := filepath.Join(p.uploadsDir, stored)

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	text, err := convertPDF(filePath)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("document yielded no text: %s", filename)
	}
	return text, nil
}

// convertPDF tries docconv first and falls back to a direct pdftotext
// invocation once before giving up.
func convertPDF(filePath string) (string, error) {
	res, err := docconv.ConvertPath(filePath)
	if err == nil && strings.TrimSpace(res.Body) != "" {
		return res.Body, nil
	}
	if err != nil {
		log.Printf("docconv failed for %s, trying pdftotext: %v", filepath.Base(filePath), err)
	}

	out, execErr := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if execErr != nil {
		if err != nil {
			return "", fmt.Errorf("failed to parse document: %w", err)
		}
		return "", fmt.Errorf("failed to parse document: %w", execErr)
	}
	return string(out), nil
}
