package report

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// collectImages returns the src attribute of every img element.
func collectImages(n *html.Node) []string {
	var srcs []string
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key == "src" {
					srcs = append(srcs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(n)
	return srcs
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "resultados.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	chartDir := filepath.Join(dir, "graficos")

	var out bytes.Buffer
	if err := Generate(Config{CSVPath: csvPath, Dir: chartDir, Output: &out}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{
		"grafico_Crescente_GERAL.png",
		"grafico_Crescente_ZOOM.png",
		"grafico_Decrescente_GERAL.png",
		"grafico_Decrescente_ZOOM.png",
	}
	for _, name := range want {
		if _, err := os.Stat(filepath.Join(chartDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	f, err := os.Open(filepath.Join(chartDir, "index.html"))
	if err != nil {
		t.Fatalf("opening index: %v", err)
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		t.Fatalf("parsing index: %v", err)
	}
	if got := collectImages(doc); !slices.Equal(got, want) {
		t.Errorf("expected images %v, got %v", want, got)
	}

	log := out.String()
	for _, s := range []string{"Orderings found: Crescente, Decrescente", "Processing ordering: Decrescente", "Finished!"} {
		if !strings.Contains(log, s) {
			t.Errorf("expected output to contain %q, got:\n%s", s, log)
		}
	}
}

func TestGenerateWarnsOnMissingData(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "r.csv")
	data := "algoritmo,tipo_vetor,tamanho_n,tempo_s\nInsertionSort,Aleatorio,10,0.5\n"
	if err := os.WriteFile(csvPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Generate(Config{CSVPath: csvPath, Dir: dir, Output: &out}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(out.String(), "no data found for [MergeSort QuickSort] (Aleatorio)") {
		t.Errorf("expected a warning, got:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "grafico_Aleatorio_ZOOM.png")); !os.IsNotExist(err) {
		t.Errorf("expected no zoom chart, got %v", err)
	}
}

func TestGenerateMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Generate(Config{CSVPath: filepath.Join(t.TempDir(), "none.csv"), Dir: t.TempDir(), Output: &out})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestWriteIndexContent(t *testing.T) {
	rows, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	table, err := Pivot(rows, "Crescente", Modes[0].Algorithms)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = WriteIndex(&buf, []Section{{
		Ordering: "Crescente",
		Charts:   []Figure{{Title: "Desempenho GERAL – Vetor Crescente", File: "a.png", Table: table}},
		Table:    table,
	}})
	if err != nil {
		t.Fatalf("WriteIndex failed: %v", err)
	}
	page := buf.String()
	for _, s := range []string{"<!DOCTYPE html>", "Insertion Sort (O(n²))", "Desempenho GERAL – Vetor Crescente", "30.000", "background:#ff0000"} {
		if !strings.Contains(page, s) {
			t.Errorf("expected page to contain %q", s)
		}
	}
}
