// Package gui はGUIを提供します
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

// Default window size constants
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// DirectoryValidator は、ディレクトリパスの検証を行うインターフェース
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectorySelector は、Fyneを使用してディレクトリ選択を行う構造体
type DirectorySelector struct {
	validator DirectoryValidator
}

// NewDirectorySelector は、DirectorySelectorの新しいインスタンスを作成します
func NewDirectorySelector(validator DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
	}
}

// SelectDirectory は、Fyneダイアログを使用してディレクトリを選択し、
// 選択されたパスまたはエラーを返します
func (s *DirectorySelector) SelectDirectory(title string) (string, error) {
	done := make(chan struct{})
	var result struct {
		path string
		err  error
	}

	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	// ダイアログを作成して表示
	d := dialog.NewFolderOpen(func(selectedURI fyne.ListableURI, err error) {
		// コールバック: ユーザーがディレクトリを選択した結果を受け取る
		if err != nil {
			result.err = fmt.Errorf("フォルダ選択エラー: %w", err)
			close(done)
			return
		}
		if selectedURI == nil {
			result.err = fmt.Errorf("ユーザーがキャンセルしました")
			close(done)
			return
		}
		path := selectedURI.Path()
		if err := s.validator.ValidateDirectoryPath(path); err != nil {
			result.err = fmt.Errorf("パス検証エラー: %w", err)
			close(done)
			return
		}
		result.path = path
		close(done)
	}, w)
	d.Show()
	w.Show()

	// イベントループ内で待機するため、a.Run() を実行
	go func() {
		<-done
		a.Quit()
	}()
	a.Run()
	return result.path, result.err
}

// DirectoryPaths は、選択されたディレクトリパスを保持する構造体です
type DirectoryPaths struct {
	Target string // リネーム対象フォルダ
	Output string // レポート出力先フォルダ
}

// SelectDirectories は、リネーム対象フォルダとレポート出力先フォルダの選択を一括で行います。
// UI 操作はメインスレッド上で、コールバックを連鎖させる形で実現します。
func SelectDirectories(selector *DirectorySelector) (*DirectoryPaths, error) {
	a := app.New()
	w := a.NewWindow("PngTidy")
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	paths := &DirectoryPaths{}
	var currentError error

	// チェーン形式でダイアログを連続表示する
	// まず、リネーム対象フォルダの選択
	dialog.NewFolderOpen(func(targetURI fyne.ListableURI, err error) {
		if err != nil {
			currentError = fmt.Errorf("リネーム対象フォルダの選択エラー: %w", err)
			w.Close()
			a.Quit()
			return
		}
		if targetURI == nil {
			currentError = fmt.Errorf("リネーム対象フォルダの選択がキャンセルされました")
			w.Close()
			a.Quit()
			return
		}
		targetPath := targetURI.Path()
		if err := selector.validator.ValidateDirectoryPath(targetPath); err != nil {
			currentError = fmt.Errorf("リネーム対象フォルダが無効です: %w", err)
			w.Close()
			a.Quit()
			return
		}
		paths.Target = targetPath

		// 次に、レポート出力先フォルダの選択
		dialog.NewFolderOpen(func(outputURI fyne.ListableURI, err error) {
			if err != nil {
				currentError = fmt.Errorf("出力先フォルダの選択エラー: %w", err)
				w.Close()
				a.Quit()
				return
			}
			if outputURI == nil {
				currentError = fmt.Errorf("出力先フォルダの選択がキャンセルされました")
				w.Close()
				a.Quit()
				return
			}
			outputPath := outputURI.Path()
			if err := selector.validator.ValidateDirectoryPath(outputPath); err != nil {
				currentError = fmt.Errorf("出力先フォルダが無効です: %w", err)
				w.Close()
				a.Quit()
				return
			}
			paths.Output = outputPath
			// 両方の選択が完了したのでウィンドウを閉じる
			w.Close()
			a.Quit()
		}, w).Show()

	}, w).Show()

	// ウィンドウ表示
	w.Show()
	a.Run()

	if currentError != nil {
		return nil, currentError
	}
	return paths, nil
}
