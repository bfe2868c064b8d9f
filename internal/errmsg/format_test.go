package errmsg

import (
	"errors"
	"testing"
)

func TestFormatWith(t *testing.T) {
	disk := errors.New("disk I/O error")

	tests := []struct {
		name   string
		op     Op
		target string
		err    error
		want   string
	}{
		{"nil error", OpOrderSave, "", nil, ""},
		{"nil error with target", OpConfigLoad, "extra.toml", nil, ""},
		{"no target", OpOrderSave, "", disk, "Failed to save card order: disk I/O error"},
		{"with target", OpStateOpen, "/tmp/tiles.db", disk, `Failed to open state database "/tmp/tiles.db": disk I/O error`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.target, tt.err); got != tt.want {
				t.Errorf("FormatWith() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	err := errors.New("read-only file system")
	for _, op := range []Op{
		OpOrderSave, OpOrderClear, OpLayoutSave,
		OpStateOpen, OpConfigLoad, OpLogOpen, OpInitialize,
	} {
		want := "Failed to " + string(op) + ": read-only file system"
		if got := Format(op, err); got != want {
			t.Errorf("Format(%q) = %q, want %q", op, got, want)
		}
	}
	if got := Format(OpLayoutSave, nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
