// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"PngTidy/internal/domain/model"
	"PngTidy/internal/infrastructure/logging"
)

// TargetSuffix はリネーム対象を判定する拡張子です（大文字小文字を区別します）
const TargetSuffix = ".png"

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// RenameRunner はリネーム処理の実行機能を提供するインターフェースです
type RenameRunner interface {
	DirectoryValidator
	Run(dir string) ([]model.RenameEntry, error)
}

// Normalizer はファイル名を正規化してリネームするための構造体です
type Normalizer struct {
	logger          logging.Logger
	refuseOverwrite bool
}

// NewNormalizer は新しい Normalizer インスタンスを作成します
func NewNormalizer(logger logging.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// SetRefuseOverwrite は上書き拒否モードを設定します。
// 有効にすると、リネーム先に既存のエントリがある場合は上書きせずエラーで中断します。
func (n *Normalizer) SetRefuseOverwrite(refuse bool) {
	n.refuseOverwrite = refuse
}

// NormalizeName はファイル名の空白文字（Unicode空白を含む）を1文字ずつハイフンに置換し、
// 全体を小文字に変換した名前を返します
func NormalizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, name)
	return strings.ToLower(name)
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (n *Normalizer) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	if strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	return nil
}

// Run は dir 直下のエントリを列挙し、名前が .png で終わるエントリを
// 正規化した名前にリネームします。リネームは列挙順に逐次実行され、
// 途中で失敗した場合はそれまでの結果とエラーを返します（実行済みのリネームは残ります）。
func (n *Normalizer) Run(dir string) ([]model.RenameEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリ一覧の取得に失敗しました: %w", err)
	}

	var entries []model.RenameEntry
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		// 判定は名前のみで行う（名前が一致すればディレクトリも対象になる）
		if !strings.HasSuffix(name, TargetSuffix) {
			continue
		}

		entry := model.RenameEntry{
			Name:    name,
			NewName: NormalizeName(name),
		}
		entry.Changed = entry.NewName != entry.Name

		if entry.Changed {
			if _, statErr := os.Lstat(filepath.Join(dir, entry.NewName)); statErr == nil {
				if n.refuseOverwrite {
					renameErr := fmt.Errorf("リネーム先が既に存在します: %s", entry.NewName)
					entry.RenameErr = renameErr
					entries = append(entries, entry)
					n.logger.LogRename("ERROR", "上書きを拒否しました", entry.Name, entry.NewName, renameErr)
					return entries, renameErr
				}
				entry.Overwrote = true
				n.logger.LogRename("WARN", "既存のエントリを上書きします", entry.Name, entry.NewName, nil)
			}
		}

		// 名前が変化しない場合もリネーム自体は実行する
		if renameErr := os.Rename(filepath.Join(dir, entry.Name), filepath.Join(dir, entry.NewName)); renameErr != nil {
			entry.RenameErr = renameErr
			entries = append(entries, entry)
			n.logger.LogRename("ERROR", "リネームに失敗しました", entry.Name, entry.NewName, renameErr)
			return entries, fmt.Errorf("'%s' のリネームに失敗しました: %w", entry.Name, renameErr)
		}

		if entry.Changed {
			n.logger.LogRename("INFO", "リネームしました", entry.Name, entry.NewName, nil)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
