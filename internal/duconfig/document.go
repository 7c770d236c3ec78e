package duconfig

import "strings"

type entryKind int

const (
	settingEntry entryKind = iota
	groupEntry
	listEntry
	arrayEntry
	commentEntry
	blankEntry
)

type entry struct {
	kind   entryKind
	key    string
	value  Value
	values []Value
	record *Record
	list   *List
	text   string
}

// Record is an insertion-ordered sequence of settings, nested groups, lists
// and interleaved comment or blank lines. Rendering preserves the order in
// which entries were appended.
type Record struct {
	entries []entry
}

// Set appends a key = value; setting.
func (r *Record) Set(key string, v Value) {
	r.entries = append(r.entries, entry{kind: settingEntry, key: key, value: v})
}

// Group appends a key : { ... }; record and returns it for filling.
func (r *Record) Group(key string) *Record {
	rec := &Record{}
	r.entries = append(r.entries, entry{kind: groupEntry, key: key, record: rec})
	return rec
}

// List appends a key = ( ... ); list and returns it for filling.
func (r *Record) List(key string) *List {
	l := &List{}
	r.entries = append(r.entries, entry{kind: listEntry, key: key, list: l})
	return l
}

// Array appends a key = [ ... ]; array of inline scalars.
func (r *Record) Array(key string, values ...Value) {
	r.entries = append(r.entries, entry{kind: arrayEntry, key: key, values: values})
}

// Comment appends a # line.
func (r *Record) Comment(text string) {
	r.entries = append(r.entries, entry{kind: commentEntry, text: text})
}

// Blank appends an empty line.
func (r *Record) Blank() {
	r.entries = append(r.entries, entry{kind: blankEntry})
}

// List is an ordered ( ... ) collection holding either scalars or records.
type List struct {
	values  []Value
	records []*Record
}

// Add appends a scalar element.
func (l *List) Add(v Value) {
	l.values = append(l.values, v)
}

// Record appends a record element and returns it for filling.
func (l *List) Record() *Record {
	rec := &Record{}
	l.records = append(l.records, rec)
	return rec
}

// Document is a complete configuration file, a brace-less top level record.
type Document struct {
	Record
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Render produces the canonical text form with a trailing newline.
func (d *Document) Render() string {
	var b strings.Builder
	d.write(&b, 0)
	return b.String()
}

func (r *Record) write(b *strings.Builder, depth int) {
	for _, e := range r.entries {
		switch e.kind {
		case blankEntry:
			b.WriteString("\n")
		case commentEntry:
			writeIndent(b, depth)
			b.WriteString("# ")
			b.WriteString(e.text)
			b.WriteString("\n")
		case settingEntry:
			writeIndent(b, depth)
			b.WriteString(e.key)
			b.WriteString(" = ")
			b.WriteString(e.value.text)
			b.WriteString(";\n")
		case arrayEntry:
			writeIndent(b, depth)
			b.WriteString(e.key)
			b.WriteString(" = [")
			for i, v := range e.values {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(v.text)
			}
			b.WriteString("];\n")
		case groupEntry:
			writeIndent(b, depth)
			b.WriteString(e.key)
			b.WriteString(" : {\n")
			e.record.write(b, depth+1)
			writeIndent(b, depth)
			b.WriteString("};\n")
		case listEntry:
			e.list.write(b, depth, e.key)
		}
	}
}

func (l *List) write(b *strings.Builder, depth int, key string) {
	writeIndent(b, depth)
	b.WriteString(key)
	if len(l.records) == 0 {
		b.WriteString(" = (")
		for i, v := range l.values {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(" ")
			b.WriteString(v.text)
		}
		b.WriteString(" );\n")
		return
	}
	b.WriteString(" = (\n")
	for i, rec := range l.records {
		writeIndent(b, depth+1)
		b.WriteString("{\n")
		rec.write(b, depth+2)
		writeIndent(b, depth+1)
		if i < len(l.records)-1 {
			b.WriteString("},\n")
		} else {
			b.WriteString("}\n")
		}
	}
	writeIndent(b, depth)
	b.WriteString(");\n")
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
