package sfcparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the document is not a usable component.
	Error Severity = iota
	// Warning means the document is usable but probably not what was meant.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "single_template")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Block    string   // related block name (optional)
	Pos      Position // position of the related section (optional)
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Block != "" {
		fmt.Fprintf(&b, " (block: <%s>", d.Block)
		if d.Pos.Line > 0 {
			fmt.Fprintf(&b, " at line %d", d.Pos.Line)
		}
		b.WriteString(")")
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(doc *Document) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the document.
// Returns all diagnostics regardless of severity.
func Validate(doc *Document, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(doc)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(doc *Document, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(doc, extraRules...)

	var errs []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	if len(errs) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errs}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		singleTemplateRule{},
		singleScriptRule{},
		srcWithContentRule{},
		duplicateAttributeRule{},
		strayRootTextRule{},
		missingTemplateOrScriptRule{},
		emptyBlockRule{},
	}
}

// --- Helper functions ---

// isEmptyBody reports whether a block has no content apart from whitespace.
func isEmptyBody(b *Block) bool {
	switch b.Kind {
	case BodyRaw:
		return strings.TrimSpace(b.Text()) == ""
	case BodyNested:
		for _, c := range b.Children {
			if r, ok := c.(*Raw); ok && strings.TrimSpace(r.Text) == "" {
				continue
			}
			return false
		}
		return true
	default:
		return true
	}
}

// --- Rule implementations ---

// single_template: A component has at most one root <template>.
type singleTemplateRule struct{}

func (singleTemplateRule) Name() string { return "single_template" }

func (singleTemplateRule) Apply(doc *Document) []Diagnostic {
	templates := doc.BlocksNamed(templateName)
	if len(templates) <= 1 {
		return nil
	}
	var diags []Diagnostic
	for _, b := range templates[1:] {
		diags = append(diags, Diagnostic{
			Rule:     "single_template",
			Severity: Error,
			Message:  fmt.Sprintf("a component can contain only one <template>, found %d", len(templates)),
			Block:    templateName,
			Pos:      b.Pos,
			Fix:      "merge the templates or move one into a child component",
		})
	}
	return diags
}

// single_script / single_script_setup: At most one plain <script> and at most
// one <script setup>.
type singleScriptRule struct{}

func (singleScriptRule) Name() string { return "single_script" }

func (singleScriptRule) Apply(doc *Document) []Diagnostic {
	var plain, setup []*Block
	for _, b := range doc.BlocksNamed("script") {
		if b.HasAttr("setup") {
			setup = append(setup, b)
		} else {
			plain = append(plain, b)
		}
	}

	var diags []Diagnostic
	for _, b := range tail(plain) {
		diags = append(diags, Diagnostic{
			Rule:     "single_script",
			Severity: Error,
			Message:  fmt.Sprintf("a component can contain only one <script>, found %d", len(plain)),
			Block:    "script",
			Pos:      b.Pos,
		})
	}
	for _, b := range tail(setup) {
		diags = append(diags, Diagnostic{
			Rule:     "single_script_setup",
			Severity: Error,
			Message:  fmt.Sprintf("a component can contain only one <script setup>, found %d", len(setup)),
			Block:    "script",
			Pos:      b.Pos,
		})
	}
	if len(plain) == 1 && len(setup) == 1 && plain[0].Lang() != setup[0].Lang() {
		diags = append(diags, Diagnostic{
			Rule:     "single_script_setup",
			Severity: Error,
			Message:  fmt.Sprintf("<script> and <script setup> must use the same lang, got %q and %q", plain[0].Lang(), setup[0].Lang()),
			Block:    "script",
			Pos:      setup[0].Pos,
			Fix:      "give both script blocks the same lang attribute",
		})
	}
	return diags
}

func tail(blocks []*Block) []*Block {
	if len(blocks) <= 1 {
		return nil
	}
	return blocks[1:]
}

// src_with_content: A block importing its content with src must be empty.
type srcWithContentRule struct{}

func (srcWithContentRule) Name() string { return "src_with_content" }

func (srcWithContentRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for _, b := range doc.Blocks() {
		if !b.HasAttr("src") || isEmptyBody(b) {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "src_with_content",
			Severity: Error,
			Message:  "block has both a src attribute and inline content",
			Block:    b.Name.s,
			Pos:      b.Pos,
			Fix:      "remove the inline content or the src attribute",
		})
	}
	return diags
}

// duplicate_attribute: The same attribute name appears twice on a root block.
type duplicateAttributeRule struct{}

func (duplicateAttributeRule) Name() string { return "duplicate_attribute" }

func (duplicateAttributeRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for _, b := range doc.Blocks() {
		seen := make(map[AttributeName]bool, len(b.Attrs))
		for _, a := range b.Attrs {
			if seen[a.Name] {
				diags = append(diags, Diagnostic{
					Rule:     "duplicate_attribute",
					Severity: Warning,
					Message:  fmt.Sprintf("attribute %q is set more than once; the last one wins", a.Name),
					Block:    b.Name.s,
					Pos:      b.Pos,
				})
				continue
			}
			seen[a.Name] = true
		}
	}
	return diags
}

// stray_root_text: Text other than whitespace between root blocks.
type strayRootTextRule struct{}

func (strayRootTextRule) Name() string { return "stray_root_text" }

func (strayRootTextRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for _, s := range doc.Sections {
		r, ok := s.(*Raw)
		if !ok || strings.TrimSpace(r.Text) == "" {
			continue
		}
		text := strings.TrimSpace(r.Text)
		if len(text) > 20 {
			text = text[:20] + "..."
		}
		diags = append(diags, Diagnostic{
			Rule:     "stray_root_text",
			Severity: Warning,
			Message:  fmt.Sprintf("text %q outside of any block is ignored", text),
			Pos:      r.Pos,
			Fix:      "wrap it in a block or a comment",
		})
	}
	return diags
}

// missing_template_or_script: A component needs a template or a script.
type missingTemplateOrScriptRule struct{}

func (missingTemplateOrScriptRule) Name() string { return "missing_template_or_script" }

func (missingTemplateOrScriptRule) Apply(doc *Document) []Diagnostic {
	if doc.Block(templateName) != nil || doc.Block("script") != nil {
		return nil
	}
	return []Diagnostic{{
		Rule:     "missing_template_or_script",
		Severity: Warning,
		Message:  "component has neither a <template> nor a <script> block",
		Fix:      "add a <template> or a <script> block",
	}}
}

// empty_block: A root block with nothing in it.
type emptyBlockRule struct{}

func (emptyBlockRule) Name() string { return "empty_block" }

func (emptyBlockRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for _, b := range doc.Blocks() {
		if b.HasAttr("src") || !isEmptyBody(b) {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "empty_block",
			Severity: Info,
			Message:  fmt.Sprintf("<%s> block is empty", b.Name),
			Block:    b.Name.s,
			Pos:      b.Pos,
		})
	}
	return diags
}
