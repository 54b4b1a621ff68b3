package catalog

import "testing"

func TestSearchEmptyQueryReturnsFirstTen(t *testing.T) {
	results := Search("")

	if len(results) != 10 {
		t.Fatalf("Search(\"\") returned %d entries, want 10", len(results))
	}
	if results[0].Name != "Ibuprofen" {
		t.Fatalf("Search(\"\") first entry = %q, want Ibuprofen", results[0].Name)
	}
	if results[9].Name != "Lorazepam" {
		t.Fatalf("Search(\"\") tenth entry = %q, want Lorazepam", results[9].Name)
	}
}

func TestSearchByName(t *testing.T) {
	results := Search("lisinopril")

	if len(results) != 1 {
		t.Fatalf("Search(lisinopril) returned %d entries, want 1", len(results))
	}
	if results[0].Name != "Lisinopril" {
		t.Fatalf("Search(lisinopril) = %q, want Lisinopril", results[0].Name)
	}
}

func TestSearchByBrandName(t *testing.T) {
	results := Search("tylenol")

	if len(results) != 1 || results[0].Name != "Acetaminophen" {
		t.Fatalf("Search(tylenol) = %#v, want single Acetaminophen entry", results)
	}
}

func TestSearchByCategorySubstring(t *testing.T) {
	results := Search("pain relief")

	names := make(map[string]bool, len(results))
	for _, medication := range results {
		names[medication.Name] = true
	}
	for _, want := range []string{"Ibuprofen", "Acetaminophen", "Aspirin"} {
		if !names[want] {
			t.Fatalf("Search(pain relief) missing %s, got %#v", want, results)
		}
	}
}

func TestSearchKeepsDeclarationOrder(t *testing.T) {
	results := Search("allergy")

	if len(results) != 2 {
		t.Fatalf("Search(allergy) returned %d entries, want 2", len(results))
	}
	if results[0].Name != "Cetirizine" || results[1].Name != "Loratadine" {
		t.Fatalf("Search(allergy) order = [%s %s], want [Cetirizine Loratadine]", results[0].Name, results[1].Name)
	}
}

func TestLookupExactMatchOnly(t *testing.T) {
	if _, found := Lookup("Lisino"); found {
		t.Fatal("Lookup(Lisino) matched, want no match for partial name")
	}

	medication, found := Lookup("  ZESTRIL ")
	if !found {
		t.Fatal("Lookup(ZESTRIL) found no match, want Lisinopril via brand name")
	}
	if medication.Name != "Lisinopril" {
		t.Fatalf("Lookup(ZESTRIL) = %q, want Lisinopril", medication.Name)
	}
}

func TestByCategory(t *testing.T) {
	results := ByCategory("blood")

	if len(results) != 2 {
		t.Fatalf("ByCategory(blood) returned %d entries, want 2", len(results))
	}
	for _, medication := range results {
		if medication.Category != "Blood Pressure" {
			t.Fatalf("ByCategory(blood) returned %q with category %q", medication.Name, medication.Category)
		}
	}
}
