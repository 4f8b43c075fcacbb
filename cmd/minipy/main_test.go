package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	minipy "github.com/VincTBest/MiniPy"
)

func evalErr(t *testing.T, src string) error {
	t.Helper()
	ip := minipy.NewInterpreter(io.Discard, minipy.DefaultOptions())
	err := ip.EvalSource(src)
	if err == nil {
		t.Fatalf("want error for %q, got none", src)
	}
	return err
}

func TestReportError_WritesToGivenStream(t *testing.T) {
	err := evalErr(t, "print 1 / 0;")

	var buf bytes.Buffer
	reportError(&buf, err, "print 1 / 0;", false)
	if !strings.Contains(buf.String(), "Error: division by zero") {
		t.Fatalf("want one-line Error form, got %q", buf.String())
	}
}

func TestReportError_VerboseSnippet(t *testing.T) {
	src := "let = 5;"
	err := evalErr(t, src)

	var buf bytes.Buffer
	reportError(&buf, err, src, true)
	out := buf.String()
	if !strings.Contains(out, "PARSE ERROR") || !strings.Contains(out, "^") {
		t.Fatalf("want caret snippet, got %q", out)
	}
}

func TestDescribe_BareMessages(t *testing.T) {
	if got := describe(evalErr(t, "print y;")); got != "undefined variable: y" {
		t.Fatalf("runtime: got %q", got)
	}
	if got := describe(evalErr(t, "let x = $;")); !strings.Contains(got, "unexpected character") {
		t.Fatalf("lex: got %q", got)
	}
	if got := describe(evalErr(t, "let = 5;")); !strings.Contains(got, "unexpected token") {
		t.Fatalf("parse: got %q", got)
	}
}
