package kwspec

import "testing"

func TestParseFirebirdVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    FirebirdVersion
		wantErr bool
	}{
		{input: "1.5", want: 15},
		{input: "2.0", want: 20},
		{input: " 4.0 ", want: 40},
		{input: "3", want: 30},
		{input: "9.9", want: 99},
		{input: "0.0", wantErr: true},
		{input: "2.55", wantErr: true},
		{input: "10.0", wantErr: true},
		{input: "x.y", wantErr: true},
		{input: "", wantErr: true},
		{input: "-1.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFirebirdVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFirebirdVersion(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseFirebirdVersion(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirebirdVersionString(t *testing.T) {
	v := MustParseFirebirdVersion("2.5")
	if v.String() != "2.5" {
		t.Errorf("String() = %q, want 2.5", v.String())
	}
	if v.Major() != 2 || v.Minor() != 5 {
		t.Errorf("Major/Minor = %d/%d, want 2/5", v.Major(), v.Minor())
	}
	if got := MustParseFirebirdVersion("4").String(); got != "4.0" {
		t.Errorf("String() = %q, want 4.0", got)
	}
}

func TestFirebirdVersionScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want FirebirdVersion
	}{
		{"integer", int64(4), 40},
		{"float", 2.5, 25},
		{"float rounding", 2.1000000001, 21},
		{"text", "3.0", 30},
		{"bytes", []byte("1.5"), 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FirebirdVersion
			if err := v.Scan(tt.src); err != nil {
				t.Fatal(err)
			}
			if v != tt.want {
				t.Errorf("Scan(%v) = %d, want %d", tt.src, v, tt.want)
			}
		})
	}

	var v FirebirdVersion
	if err := v.Scan(int64(12)); err == nil {
		t.Error("expected error for out of range version")
	}
	if err := v.Scan(true); err == nil {
		t.Error("expected error for unsupported source type")
	}
}

func TestFirebirdVersionValue(t *testing.T) {
	got, err := MustParseFirebirdVersion("2.1").Value()
	if err != nil {
		t.Fatal(err)
	}
	if got != 2.1 {
		t.Errorf("Value() = %v, want 2.1", got)
	}
}

func TestParseSQLVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    SQLVersion
		wantErr bool
	}{
		{input: "2003", want: 2003},
		{input: "1992", want: 1992},
		{input: " 2016\n", want: 2016},
		{input: "0", wantErr: true},
		{input: "-2003", wantErr: true},
		{input: "20.03", wantErr: true},
		{input: "99999", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSQLVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSQLVersion(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseSQLVersion(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeywordString(t *testing.T) {
	kw := Of("ABS", MustParseFirebirdVersion("4.0"), false)
	if got, want := kw.String(), "ABS (4.0, non-reserved)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	sqlKw := SQLKeyword{Word: "SELECT", Version: 2003, Reserved: true}
	if got, want := sqlKw.String(), "SELECT (2003, reserved)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCheckWord(t *testing.T) {
	if err := CheckWord("SELECT"); err != nil {
		t.Errorf("CheckWord(SELECT) = %v", err)
	}
	if err := CheckWord(""); err == nil {
		t.Error("expected error for empty word")
	}
	long := "ABCDEFGHIJABCDEFGHIJABCDEFGHIJABCDEFGHIJABCDEFGHIJ"
	if err := CheckWord(long); err != nil {
		t.Errorf("CheckWord(50 chars) = %v", err)
	}
	if err := CheckWord(long + "X"); err == nil {
		t.Error("expected error for 51 character word")
	}
}
