package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func tree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func TestRunLintCompliant(t *testing.T) {
	root := tree(t, map[string]string{
		"main.go": "// SPDX-FileCopyrightText: 2026 Jane Doe\n//\n// SPDX-License-Identifier: MIT\npackage main\n",
	})

	c := newTestCLI(t)
	if err := c.runLint(context.Background(), root, true, true); err != nil {
		t.Errorf("compliant tree should lint clean, got %v", err)
	}
}

func TestRunLintNonCompliant(t *testing.T) {
	root := tree(t, map[string]string{
		"main.go":  "// SPDX-License-Identifier: MIT\npackage main\n",
		"other.go": "package other\n",
	})

	c := newTestCLI(t)
	err := c.runLint(context.Background(), root, true, true)
	if err == nil {
		t.Error("tree with missing metadata should fail lint")
	}
}

func TestRunLintMalformedCopyrightFile(t *testing.T) {
	root := tree(t, map[string]string{
		".reuse/dep5": " bad continuation\n",
		"main.go":     "package main\n",
	})

	c := newTestCLI(t)
	if err := c.runLint(context.Background(), root, true, true); err == nil {
		t.Error("malformed copyright file should fail lint")
	}
}

func TestRunShowCombineJSON(t *testing.T) {
	root := tree(t, map[string]string{
		"a.go": "// SPDX-FileCopyrightText: 2026 Jane Doe\n//\n// SPDX-License-Identifier: MIT\npackage a\n",
		"b.go": "// SPDX-FileCopyrightText: 2026 Jane Doe\n//\n// SPDX-License-Identifier: MIT\npackage b\n",
	})

	c := newTestCLI(t)
	if err := c.runShow(context.Background(), root, true, true, true); err != nil {
		t.Errorf("runShow: %v", err)
	}
}
