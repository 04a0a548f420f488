package main

import (
	"errors"
	"testing"
)

func TestRunAndClose(t *testing.T) {
	errRun := errors.New("run failed")
	tests := []struct {
		name    string
		runErr  error
		wantErr error
	}{
		{"正常退出", nil, nil},
		{"运行出错", errRun, errRun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := false
			err := runAndClose(func() error {
				if closed {
					t.Error("scene closed before the game loop returned")
				}
				return tt.runErr
			}, func() { closed = true })

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runAndClose() error = %v, want %v", err, tt.wantErr)
			}
			if !closed {
				t.Error("scene must be closed even when the game loop fails")
			}
		})
	}
}
