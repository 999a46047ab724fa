package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(body.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytes_DocxParagraphs(t *testing.T) {
	data := buildDocx(t, "Jane Doe", "Skills: Go, SQL")

	text, err := TextFromBytes(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	want := "Jane Doe\nSkills: Go, SQL"
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestTextFromBytes_ZipMimeNormalizesToDocx(t *testing.T) {
	data := buildDocx(t, "hello")

	if _, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextFromBytes_PlainText(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("  plain resume text \n"), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	if text != "plain resume text" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytes_OctetStreamTxtFallback(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("fallback"), "application/octet-stream", "resume.txt")
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	if text != "fallback" {
		t.Fatalf("text = %q", text)
	}
}
