// Package main はカレントディレクトリを対象とするエントリーポイントを提供します
package main

import (
	"fmt"
	"log"
	"os"

	"PngTidy/internal/infrastructure/filesystem"
	"PngTidy/internal/infrastructure/logging"
	"PngTidy/internal/usecase/report"
)

func main() {
	// ロガーの初期化（レポートをstdoutに出すため、ログはstderrへ）
	logger := logging.NewJSONLogger(os.Stderr)

	// ノーマライザの初期化
	normalizer := filesystem.NewNormalizer(logger)

	// レポートジェネレーターの初期化
	generator := report.NewGenerator()

	// カレントディレクトリを対象とする
	workDir, err := os.Getwd()
	if err != nil {
		logger.Log("ERROR", "カレントディレクトリの取得に失敗", err)
		log.Fatalf("エラー: %v", err)
	}
	logger.Log("INFO", fmt.Sprintf("リネーム対象フォルダ: %s", workDir), nil)

	// リネームの実行
	entries, runErr := normalizer.Run(workDir)

	// 途中で失敗した場合も、実行済みの結果はレポートに残す
	generator.WriteSummary(os.Stdout, entries)
	generator.WriteRenameResults(os.Stdout, entries)

	if runErr != nil {
		logger.Log("ERROR", "リネーム処理に失敗", runErr)
		log.Fatalf("エラー: %v", runErr)
	}

	logger.Log("INFO", "処理が完了しました", nil)
}
