package documents

import "github.com/JaimeStill/doc-library/pkg/repository"

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Filename,
		&d.SizeBytes,
		&d.PageCount,
		&d.Status,
		&d.StorageKey,
		&d.CreatedAt,
		&d.ExtractedPages,
	)
	return d, err
}

func scanText(s repository.Scanner) (string, error) {
	var text string
	err := s.Scan(&text)
	return text, err
}
