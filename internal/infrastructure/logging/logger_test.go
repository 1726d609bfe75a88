package logging

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		message string
		err     error
	}{
		{
			name:    "エラーなしのログ",
			level:   "INFO",
			message: "テストメッセージ",
			err:     nil,
		},
		{
			name:    "エラーありのログ",
			level:   "ERROR",
			message: "エラーメッセージ",
			err:     errors.New("テストエラー"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := NewJSONLogger(&buf)

			logger.Log(tt.level, tt.message, tt.err)

			// 出力を検証
			output := buf.String()
			var logEntry LogEntry
			if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &logEntry); err != nil {
				t.Errorf("JSONの解析に失敗: %v", err)
			}

			// 各フィールドを検証
			if logEntry.Message != tt.message {
				t.Errorf("メッセージが不正: got %v, want %v", logEntry.Message, tt.message)
			}
			if logEntry.Level != tt.level {
				t.Errorf("ログレベルが不正: got %v, want %v", logEntry.Level, tt.level)
			}
			if tt.err != nil {
				if logEntry.Error != tt.err.Error() {
					t.Errorf("エラーメッセージが不正: got %v, want %v", logEntry.Error, tt.err.Error())
				}
			} else if logEntry.Error != "" {
				t.Errorf("エラーメッセージが不正: got %v, want empty", logEntry.Error)
			}

			// リネーム情報なしのログにはfrom/toが含まれない
			if logEntry.From != "" || logEntry.To != "" {
				t.Errorf("from/toが不正: got %v/%v, want empty", logEntry.From, logEntry.To)
			}

			// タイムスタンプが現在時刻に近いことを確認
			logTime, err := time.Parse(time.RFC3339, logEntry.Timestamp)
			if err != nil {
				t.Errorf("タイムスタンプの解析に失敗: %v", err)
			}

			timeDiff := time.Since(logTime)
			if timeDiff > time.Minute {
				t.Errorf("タイムスタンプが不正: got %v, 現在との差が1分以上", logEntry.Timestamp)
			}
		})
	}
}

func TestJSONLogger_LogRename(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		message string
		from    string
		to      string
		err     error
	}{
		{
			name:    "リネーム成功のログ",
			level:   "INFO",
			message: "リネームしました",
			from:    "My Picture.png",
			to:      "my-picture.png",
			err:     nil,
		},
		{
			name:    "リネーム失敗のログ",
			level:   "ERROR",
			message: "リネームに失敗しました",
			from:    "Old File.png",
			to:      "old-file.png",
			err:     errors.New("permission denied"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := NewJSONLogger(&buf)

			logger.LogRename(tt.level, tt.message, tt.from, tt.to, tt.err)

			output := buf.String()
			var logEntry LogEntry
			if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &logEntry); err != nil {
				t.Errorf("JSONの解析に失敗: %v", err)
			}

			if logEntry.From != tt.from {
				t.Errorf("リネーム元が不正: got %v, want %v", logEntry.From, tt.from)
			}
			if logEntry.To != tt.to {
				t.Errorf("リネーム先が不正: got %v, want %v", logEntry.To, tt.to)
			}
			if tt.err != nil && logEntry.Error != tt.err.Error() {
				t.Errorf("エラーメッセージが不正: got %v, want %v", logEntry.Error, tt.err.Error())
			}
		})
	}
}
