// Package resume extracts structured candidate fields from resume documents.
//
// Decoding (PDF, DOCX) is done by TextExtractors; the field extractors in this
// package only ever see plain text and are pure regex and line heuristics.
package resume

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MinTextLength is the shortest trimmed text, in characters, worth parsing
const MinTextLength = 50

// ParsedResume holds the fields extracted from a resume
type ParsedResume struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	EducationText   *string  `json:"education_text"`
}

// Parser turns resume files into ParsedResume values
type Parser struct {
	extractors map[string]TextExtractor
}

// NewParser creates a parser for PDF and DOCX files
func NewParser() *Parser {
	return &Parser{
		extractors: map[string]TextExtractor{
			".pdf":  PDFExtractor{},
			".docx": DOCXExtractor{},
		},
	}
}

// Register sets the extractor used for a file extension such as ".pdf"
func (p *Parser) Register(ext string, extractor TextExtractor) {
	p.extractors[strings.ToLower(ext)] = extractor
}

// IsSupportedFormat checks if the file format is supported
func (p *Parser) IsSupportedFormat(filename string) bool {
	_, ok := p.extractors[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Parse decodes the file by its extension and extracts the resume fields.
// Every failure is a *ParseError.
func (p *Parser) Parse(content []byte, filename string) (*ParsedResume, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	extractor, ok := p.extractors[ext]
	if !ok {
		return nil, &ParseError{Err: ErrUnsupportedFormat}
	}

	text, err := extractor.ExtractText(content)
	if err != nil {
		return nil, &ParseError{
			Message: "error extracting text from " + strings.ToUpper(strings.TrimPrefix(ext, ".")),
			Err:     err,
		}
	}

	return p.ParseText(text)
}

// ParseText extracts the resume fields from already decoded text.
func (p *Parser) ParseText(text string) (*ParsedResume, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextLength {
		return nil, &ParseError{Err: ErrInsufficientText}
	}

	return &ParsedResume{
		Name:            ExtractName(text),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Skills:          ExtractSkills(text),
		ExperienceYears: ExtractExperienceYears(text),
		EducationText:   ExtractEducation(text),
	}, nil
}
