package catalog

// Manager holds a set of registered Entry records, keyed by name.
type Manager struct {
	libraries map[string]*Entry
	order     []string
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{libraries: make(map[string]*Entry)}
}

// Register adds or replaces a library.
func (m *Manager) Register(e *Entry) {
	if _, exists := m.libraries[e.Name]; !exists {
		m.order = append(m.order, e.Name)
	}
	m.libraries[e.Name] = e
}

// Get returns the named library, if registered.
func (m *Manager) Get(name string) (*Entry, bool) {
	e, ok := m.libraries[name]
	return e, ok
}

// List returns registered library names in registration order.
func (m *Manager) List() []string {
	return m.order
}

// NewStdlibManager returns a Manager pre-populated with the four built-in
// standard library entries.
func NewStdlibManager() *Manager {
	m := NewManager()
	m.Register(StdlibC())
	m.Register(StdlibCPP())
	m.Register(StdlibRust())
	m.Register(StdlibGo())
	return m
}

// StdlibC mirrors create_stdlib_c: a strlen/strcpy pair.
func StdlibC() *Entry {
	e := NewEntry("stdlib_c", "1.0.0", "Standard library implemented in C", "C")
	e.AddFunction(Function{Name: "strlen", Params: []string{"str"}, ReturnType: "number", ImplementationLanguage: "C"})
	e.AddFunction(Function{Name: "strcpy", Params: []string{"dest", "src"}, ReturnType: "string", ImplementationLanguage: "C"})
	return e
}

// StdlibCPP mirrors create_stdlib_cpp.
func StdlibCPP() *Entry {
	e := NewEntry("stdlib_cpp", "1.0.0", "Standard library implemented in C++", "C++")
	e.AddFunction(Function{Name: "string_length", Params: []string{"str"}, ReturnType: "number", ImplementationLanguage: "C++"})
	return e
}

// StdlibRust mirrors create_stdlib_rust.
func StdlibRust() *Entry {
	e := NewEntry("stdlib_rust", "1.0.0", "Standard library implemented in Rust", "Rust")
	e.AddFunction(Function{Name: "string_reverse", Params: []string{"str"}, ReturnType: "string", ImplementationLanguage: "Rust"})
	return e
}

// StdlibGo mirrors create_stdlib_go.
func StdlibGo() *Entry {
	e := NewEntry("stdlib_go", "1.0.0", "Standard library implemented in Go", "Go")
	e.AddFunction(Function{Name: "bytes_to_string", Params: []string{"data"}, ReturnType: "string", ImplementationLanguage: "Go"})
	return e
}
