package rule

import "testing"

func TestCase(t *testing.T) {
	tests := []struct {
		name string
		opts CaseOptions
		in   string
		want string
	}{
		{"invert", CaseOptions{Mode: CaseInvert}, "MixedCASE.txt", "mIXEDcase.txt"},
		{"title", CaseOptions{Mode: CaseTitle}, "hello wORLD_foo-bar.TXT", "Hello World_Foo-Bar.TXT"},
		{"title digits join words", CaseOptions{Mode: CaseTitle}, "2nd take.txt", "2nd Take.txt"},
		{"lower", CaseOptions{Mode: CaseLower}, "ÄBC.TXT", "äbc.TXT"},
		{"upper including extension", CaseOptions{Mode: CaseUpper, Ext: ExtInclude}, "a.txt", "A.TXT"},
		{"lower extension only", CaseOptions{Mode: CaseOriginal, Ext: ExtLower}, "Photo.JPG", "Photo.jpg"},
		{"capitalize", CaseOptions{Mode: CaseCapitalize}, "hELLO wORLD.txt", "Hello world.txt"},
		{"capitalize empty stem", CaseOptions{Mode: CaseCapitalize}, ".rc", ".rc"},
		{"original", DefaultCaseOptions(), "KeeP.Me", "KeeP.Me"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := affect(NewCase(tt.opts), tt.in)[0]; got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCaseCommands(t *testing.T) {
	r := Rule(NewCase(DefaultCaseOptions()))
	r = mustRun(t, r, "uppercase")
	r = mustRun(t, r, "lower extension")
	if got := affect(r, "name.TXT")[0]; got != "NAME.txt" {
		t.Errorf("got %q, want NAME.txt", got)
	}
	if got, want := r.Describe(), "make file names be upper case with lower case extensions"; got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}
