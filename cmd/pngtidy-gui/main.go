// Package main はGUI版のエントリーポイントを提供します
package main

import (
	"fmt"
	"log"
	"os"

	"PngTidy/internal/gui"
	"PngTidy/internal/infrastructure/filesystem"
	"PngTidy/internal/infrastructure/logging"
	"PngTidy/internal/usecase/report"
)

func main() {
	// ロガーの初期化
	logger := logging.NewJSONLogger(os.Stdout)

	// ノーマライザの初期化（対話実行では既存ファイルの上書きを拒否する）
	normalizer := filesystem.NewNormalizer(logger)
	normalizer.SetRefuseOverwrite(true)

	// ディレクトリセレクターの初期化（Fyneベース）
	selector := gui.NewDirectorySelector(normalizer)

	// レポートジェネレーターの初期化
	generator := report.NewGenerator()

	// フォルダ選択処理の実行
	dirs, err := gui.SelectDirectories(selector)
	if err != nil {
		logger.Log("ERROR", "フォルダ選択に失敗", err)
		log.Fatalf("エラー: %v", err)
	}

	targetDir := dirs.Target
	outputDir := dirs.Output
	logger.Log("INFO", fmt.Sprintf("選択されたフォルダ - リネーム対象: %s, 出力先: %s", targetDir, outputDir), nil)

	// 出力ファイルの作成
	outputFile, outputPath, err := generator.CreateOutputFile(outputDir)
	if err != nil {
		logger.Log("ERROR", "出力ファイルの作成に失敗", err)
		log.Fatalf("エラー: %v", err)
	}
	defer outputFile.Close()
	logger.Log("INFO", "出力ファイルを作成しました", nil)

	// リネームの実行
	entries, runErr := normalizer.Run(targetDir)

	// レポートの生成（途中で失敗した場合も実行済みの結果は残す）
	generator.WriteSummary(outputFile, entries)
	generator.WriteRenameResults(outputFile, entries)
	logger.Log("INFO", fmt.Sprintf("レポートを生成しました: %s", outputPath), nil)

	if runErr != nil {
		logger.Log("ERROR", "リネーム処理に失敗", runErr)
		log.Fatalf("エラー: %v", runErr)
	}

	logger.Log("INFO", "処理が完了しました", nil)
	log.Printf("処理が完了しました。出力先: %s\n", outputPath)

	// プログラム終了前にEnterキーの入力を待機
	fmt.Print("\nEnterキーを押して終了してください...")
	fmt.Scanln()
}
