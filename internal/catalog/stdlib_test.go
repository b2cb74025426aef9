package catalog

import "testing"

func TestNewStdlibManagerRegistersFourLibraries(t *testing.T) {
	m := NewStdlibManager()
	want := []string{"stdlib_c", "stdlib_cpp", "stdlib_rust", "stdlib_go"}
	got := m.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStdlibEntriesHaveExpectedFunctions(t *testing.T) {
	m := NewStdlibManager()

	c, ok := m.Get("stdlib_c")
	if !ok {
		t.Fatal("stdlib_c not registered")
	}
	if _, ok := c.GetFunction("strlen"); !ok {
		t.Error("stdlib_c missing strlen")
	}
	if _, ok := c.GetFunction("strcpy"); !ok {
		t.Error("stdlib_c missing strcpy")
	}

	cpp, _ := m.Get("stdlib_cpp")
	if _, ok := cpp.GetFunction("string_length"); !ok {
		t.Error("stdlib_cpp missing string_length")
	}

	rust, _ := m.Get("stdlib_rust")
	if _, ok := rust.GetFunction("string_reverse"); !ok {
		t.Error("stdlib_rust missing string_reverse")
	}

	goLib, _ := m.Get("stdlib_go")
	if _, ok := goLib.GetFunction("bytes_to_string"); !ok {
		t.Error("stdlib_go missing bytes_to_string")
	}
}

func TestManagerGetMissingLibrary(t *testing.T) {
	m := NewManager()
	if _, ok := m.Get("nope"); ok {
		t.Error("expected Get(\"nope\") to report not-found")
	}
}
