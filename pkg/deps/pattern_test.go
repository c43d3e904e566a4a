package deps

import "testing"

func TestDefaultLanguages_AllKindsCovered(t *testing.T) {
	for _, l := range DefaultLanguages() {
		for _, kind := range Kinds {
			if len(l.KindPatterns(kind)) == 0 {
				t.Errorf("language %s has no %s pattern", l.Name, kind)
			}
		}
	}
}

func TestDefaultLanguages_RegexCompiled(t *testing.T) {
	for _, l := range DefaultLanguages() {
		for _, p := range l.Patterns {
			if p.Regex == nil {
				t.Errorf("%s/%s has nil regex", l.Name, p.Name)
			}
			if p.Name == "" {
				t.Errorf("language %s has unnamed pattern (kind %s)", l.Name, p.Kind)
			}
		}
	}
}

func TestExtensionMap(t *testing.T) {
	m := ExtensionMap(DefaultLanguages())

	tests := []struct {
		ext  string
		want string
	}{
		{".js", "javascript"},
		{".jsx", "javascript"},
		{".mjs", "javascript"},
		{".ts", "typescript"},
		{".tsx", "typescript"},
		{".py", "python"},
	}
	for _, tt := range tests {
		l, ok := m[tt.ext]
		if !ok {
			t.Errorf("ExtensionMap missing %s", tt.ext)
			continue
		}
		if l.Name != tt.want {
			t.Errorf("ExtensionMap[%s] = %s, want %s", tt.ext, l.Name, tt.want)
		}
	}

	if _, ok := m[".go"]; ok {
		t.Error("ExtensionMap should not map unsupported .go")
	}
}

func TestByName(t *testing.T) {
	langs := DefaultLanguages()

	if l := ByName(langs, "python"); l == nil || l.Name != "python" {
		t.Errorf("ByName(python) = %v", l)
	}
	if l := ByName(langs, "fortran"); l != nil {
		t.Errorf("ByName(fortran) = %v, want nil", l)
	}
}
