package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"PngTidy/internal/infrastructure/logging"
)

// setupBenchmarkDir creates a temporary directory populated with rename targets.
func setupBenchmarkDir(tb testing.TB, fileCount int) string {
	tb.Helper()
	tempDir, err := os.MkdirTemp("", "benchmark_rename_*")
	if err != nil {
		tb.Fatalf("Failed to create temp dir: %v", err)
	}

	for i := 0; i < fileCount; i++ {
		fileName := filepath.Join(tempDir, fmt.Sprintf("Screen Shot %d.png", i))
		if err := os.WriteFile(fileName, []byte("png"), 0644); err != nil {
			os.RemoveAll(tempDir)
			tb.Fatalf("Failed to write file %s: %v", fileName, err)
		}
	}

	return tempDir
}

// BenchmarkNormalizeName benchmarks the pure name transform.
func BenchmarkNormalizeName(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		NormalizeName("My Very Long Screen Shot 2024.png")
	}
}

// BenchmarkNormalizer_Run benchmarks a full rename pass over a directory.
func BenchmarkNormalizer_Run(b *testing.B) {
	// Use a logger that discards output to avoid interfering with benchmark timing.
	logger := logging.NewJSONLogger(io.Discard)
	normalizer := NewNormalizer(logger)

	fileCount := 50

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Renames mutate the fixture, so rebuild it outside the timed section.
		b.StopTimer()
		tempDir := setupBenchmarkDir(b, fileCount)
		b.StartTimer()

		if _, err := normalizer.Run(tempDir); err != nil {
			b.Fatalf("Run failed during benchmark: %v", err)
		}

		b.StopTimer()
		os.RemoveAll(tempDir)
		b.StartTimer()
	}
}
