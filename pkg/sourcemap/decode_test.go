package sourcemap

import "testing"

func TestDecodeMappingsSimple(t *testing.T) {
	segs, err := decodeMappings("AAAA,IAAEA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].GeneratedLine != 1 || segs[0].GeneratedColumn != 0 {
		t.Errorf("segs[0] generated = (%d,%d), want (1,0)", segs[0].GeneratedLine, segs[0].GeneratedColumn)
	}
	if !segs[0].HasSource || segs[0].SourceIndex != 0 || segs[0].OriginalLine != 0 || segs[0].OriginalColumn != 0 {
		t.Errorf("segs[0] = %+v, want source 0 original (0,0)", segs[0])
	}
	if segs[1].GeneratedColumn != 4 {
		t.Errorf("segs[1].GeneratedColumn = %d, want 4", segs[1].GeneratedColumn)
	}
	if !segs[1].HasName || segs[1].NameIndex != 0 {
		t.Errorf("segs[1] = %+v, want name index 0", segs[1])
	}
}

func TestDecodeMappingsLineSeparator(t *testing.T) {
	segs, err := decodeMappings("AAAA;AACA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].GeneratedLine != 1 {
		t.Errorf("segs[0].GeneratedLine = %d, want 1", segs[0].GeneratedLine)
	}
	if segs[1].GeneratedLine != 2 {
		t.Errorf("segs[1].GeneratedLine = %d, want 2", segs[1].GeneratedLine)
	}
	// Generated column resets across the line boundary: delta "A" means 0.
	if segs[1].GeneratedColumn != 0 {
		t.Errorf("segs[1].GeneratedColumn = %d, want 0", segs[1].GeneratedColumn)
	}
}

func TestDecodeMappingsUnmappedSegment(t *testing.T) {
	segs, err := decodeMappings(";;AAAA;AACA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments (two leading empty lines produce none), got %d", len(segs))
	}
	if segs[0].GeneratedLine != 3 {
		t.Errorf("segs[0].GeneratedLine = %d, want 3", segs[0].GeneratedLine)
	}
}

func TestDecodeMappingsEmptyString(t *testing.T) {
	segs, err := decodeMappings("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 0 {
		t.Errorf("expected no segments, got %d", len(segs))
	}
}

func TestDecodeMappingsInvalidCharacter(t *testing.T) {
	if _, err := decodeMappings("AAA!"); err == nil {
		t.Error("expected error for invalid VLQ character")
	}
}
