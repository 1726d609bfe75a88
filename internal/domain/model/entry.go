// package model はドメインモデルを定義します
package model

// RenameEntry はリネーム対象のディレクトリエントリを表します
type RenameEntry struct {
	// Name は一覧取得時点のエントリ名を表します
	Name string
	// NewName は正規化後のエントリ名を表します
	NewName string
	// Changed は名前が変化するかどうかを示します
	Changed bool
	// Overwrote はリネームによって既存のエントリを上書きしたかどうかを示します
	Overwrote bool
	// RenameErr はリネーム時のエラーを保持します
	RenameErr error
}
