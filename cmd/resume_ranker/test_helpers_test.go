package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testJob = `Backend Engineer
Required skills: Java, PostgreSQL, Docker.
Experience with Kubernetes is a plus.`

// newTestData writes a job description and two resumes into a temp dir.
func newTestData(t *testing.T) (jobPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	jobPath = filepath.Join(dir, "job_description.txt")
	files := map[string]string{
		"job_description.txt": testJob,
		"strong.txt":          "Java and PostgreSQL engineer running Docker on Kubernetes.",
		"weak.txt":            "Graphic designer.",
		"readme.md":           "not a resume",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return jobPath, dir
}
