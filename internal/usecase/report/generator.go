// Package report はリネーム結果のレポート生成機能を提供します
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"PngTidy/internal/domain/model"
)

const (
	OutputFilePrefix = "rename_report_"
	OutputFileSuffix = ".txt"
	TimestampLayout  = "20060102_150405"
)

// Generator はレポート生成機能を提供します
type Generator struct{}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{}
}

// CreateOutputFile は出力ファイルを作成します
func (g *Generator) CreateOutputFile(outputDir string) (*os.File, string, error) {
	timestamp := time.Now().Format(TimestampLayout)
	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s%s%s", OutputFilePrefix, timestamp, OutputFileSuffix))

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteSummary は対象数・変更数・上書き数・失敗数の集計を出力します
func (g *Generator) WriteSummary(writer io.Writer, entries []model.RenameEntry) {
	var changed, overwrote, failed int
	for _, entry := range entries {
		if entry.RenameErr != nil {
			failed++
			continue
		}
		if entry.Changed {
			changed++
		}
		if entry.Overwrote {
			overwrote++
		}
	}

	fmt.Fprintln(writer, "===== リネーム結果サマリ =====")
	fmt.Fprintf(writer, "対象: %d\n", len(entries))
	fmt.Fprintf(writer, "変更: %d\n", changed)
	fmt.Fprintf(writer, "上書き: %d\n", overwrote)
	fmt.Fprintf(writer, "失敗: %d\n", failed)
}

// WriteRenameResults はエントリごとのリネーム結果を一覧で出力します。
// 名前が変化したものは [RENAME]、変化しなかったものは [KEEP]、
// 失敗したものは [ERROR] のタグを付与します。
func (g *Generator) WriteRenameResults(writer io.Writer, entries []model.RenameEntry) {
	fmt.Fprintln(writer, "\n===== リネーム内訳 =====")

	for _, entry := range entries {
		switch {
		case entry.RenameErr != nil:
			fmt.Fprintf(writer, "[ERROR]  %s -> %s (%v)\n", entry.Name, entry.NewName, entry.RenameErr)
		case entry.Changed && entry.Overwrote:
			fmt.Fprintf(writer, "[RENAME] %s -> %s (上書き)\n", entry.Name, entry.NewName)
		case entry.Changed:
			fmt.Fprintf(writer, "[RENAME] %s -> %s\n", entry.Name, entry.NewName)
		default:
			fmt.Fprintf(writer, "[KEEP]   %s\n", entry.Name)
		}
	}
}
