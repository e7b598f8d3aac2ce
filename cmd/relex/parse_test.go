package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Diagnostics must travel back through Execute as errors, not kill the process.
func TestParseCommandReturnsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	gp := filepath.Join(dir, "bad.grammar")
	if e := os.WriteFile(gp, []byte("$a = /x/;"), 0o644); e != nil {
		t.Fatal(e)
	}
	sp := filepath.Join(dir, "main.src")
	if e := os.WriteFile(sp, []byte("x\n"), 0o644); e != nil {
		t.Fatal(e)
	}

	oldGrammar := grammarPath
	defer func() {
		grammarPath = oldGrammar
		rootCmd.SetArgs(nil)
	}()

	chdir(t, dir)
	rootCmd.SetArgs([]string{"parse", "--grammar", gp, sp})
	if e := rootCmd.Execute(); e == nil {
		t.Fatal("expecting a grammar diagnostic from Execute")
	}
}
