package embed

import (
	"strings"
	"testing"

	"github.com/aydenstechdungeon/modalkit/component/modal"
)

func TestStylesheetDefinesEveryClass(t *testing.T) {
	css := string(Stylesheet())
	classes := []string{
		modal.ClassModal,
		modal.ClassContent,
		modal.ClassHeader,
		modal.ClassHeaderText,
		modal.ClassHeaderButton,
		modal.ClassMain,
		modal.ClassMainText,
		modal.ClassFooter,
		modal.ClassFooterButton,
	}
	for _, class := range classes {
		if !strings.Contains(css, "."+class+" {") {
			t.Errorf("Expected stylesheet to define .%s", class)
		}
	}
	for _, size := range []modal.Size{modal.SizeSmall, modal.SizeMedium, modal.SizeLarge} {
		if !strings.Contains(css, ".m-modal-content."+string(size)) {
			t.Errorf("Expected size modifier .%s", size)
		}
	}
}

func TestRuntimeJS(t *testing.T) {
	if !strings.Contains(string(RuntimeJS()), "data-on") {
		t.Error("Expected runtime to bind data-on attributes")
	}
}

func TestHash(t *testing.T) {
	h1, err := Hash(StylesheetName)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if len(h1) != 16 {
		t.Errorf("Expected 16 hex chars, got %q", h1)
	}
	h2, _ := Hash(StylesheetName)
	if h1 != h2 {
		t.Error("Expected stable hash")
	}
	if _, err := Hash("missing.css"); err == nil {
		t.Error("Expected error for missing asset")
	}
}
