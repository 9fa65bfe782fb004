package catalog

// Module is one node of the catalog tree: leaf messages plus nested
// child modules, both iterated in literal-key order so output is
// deterministic regardless of input ordering.
type Module struct {
	messages map[Key]*Message
	modules  map[Key]*Module
}

func newModule() *Module {
	return &Module{
		messages: make(map[Key]*Message),
		modules:  make(map[Key]*Module),
	}
}

// MessageKeys returns the module's message keys sorted by literal.
func (m *Module) MessageKeys() []Key {
	return sortedKeys(m.messages)
}

func (m *Module) Message(k Key) (*Message, bool) {
	msg, ok := m.messages[k]
	return msg, ok
}

// ModuleKeys returns the child module keys sorted by literal.
func (m *Module) ModuleKeys() []Key {
	return sortedKeys(m.modules)
}

func (m *Module) Module(k Key) (*Module, bool) {
	child, ok := m.modules[k]
	return child, ok
}

// Empty reports whether the module holds neither messages nor children.
func (m *Module) Empty() bool {
	return len(m.messages) == 0 && len(m.modules) == 0
}

func (m *Module) ensureMessage(k Key) *Message {
	msg, ok := m.messages[k]
	if !ok {
		msg = newMessage()
		m.messages[k] = msg
	}
	return msg
}

func (m *Module) ensureModule(k Key) *Module {
	child, ok := m.modules[k]
	if !ok {
		child = newModule()
		m.modules[k] = child
	}
	return child
}
