package transfer

import (
	"fmt"
	"strconv"
	"strings"

	"soapui2postman/internal/issue"
	"soapui2postman/internal/model"
	"soapui2postman/internal/pathexpr"
)

const component = "transfer"

// TargetKind classifies where a transfer writes to.
type TargetKind int

const (
	TargetVariable TargetKind = iota
	TargetHeader
	TargetQuery
	TargetUnsupported
)

// Resolve converts one property transfer into extraction plus write code.
// The returned fragment always ends with a diagnostic log naming both ends.
func Resolve(spec model.PropertyTransferSpec, log *issue.Log) string {
	var b strings.Builder

	writeExtraction(&b, spec, log)
	writeTarget(&b, spec, log)

	fmt.Fprintf(&b, "console.log(%s);",
		strconv.Quote(fmt.Sprintf("Transferred %s: %s -> %s", spec.Name, spec.Source, spec.Target)))

	return b.String()
}

// writeExtraction binds the transferred value to "value".
func writeExtraction(b *strings.Builder, spec model.PropertyTransferSpec, log *issue.Log) {
	lang := resolveLanguage(spec.SourcePath, spec.Name, log)

	if spec.Source.IsResponse() {
		if lang == model.PathXPath {
			b.WriteString(pathexpr.Translate(spec.SourcePath.Raw, lang, "pm.response.text()", "value"))
			b.WriteString("\n")
			return
		}

		b.WriteString("const sourceData = pm.response.json();\n")
		b.WriteString(pathexpr.Translate(spec.SourcePath.Raw, lang, "sourceData", "value"))
		b.WriteString("\n")
		return
	}

	// Named prior step: read its stored variable.
	key := variableKey(spec.Source)
	fmt.Fprintf(b, "let sourceRaw = pm.collectionVariables.get(%s);\n", strconv.Quote(key))

	if lang == model.PathXPath {
		b.WriteString(pathexpr.Translate(spec.SourcePath.Raw, lang, "sourceRaw", "value"))
		b.WriteString("\n")
		return
	}

	b.WriteString("let sourceData = sourceRaw;\n")
	b.WriteString("try {\n")
	b.WriteString("    sourceData = JSON.parse(sourceRaw);\n")
	b.WriteString("} catch (err) {\n")
	b.WriteString("    // Stored value is not JSON; use it as-is.\n")
	b.WriteString("}\n")
	b.WriteString(pathexpr.Translate(spec.SourcePath.Raw, lang, "sourceData", "value"))
	b.WriteString("\n")
}

// writeTarget emits the write side, classified by request-construction keywords.
func writeTarget(b *strings.Builder, spec model.PropertyTransferSpec, log *issue.Log) {
	switch ClassifyTarget(spec) {
	case TargetHeader:
		fmt.Fprintf(b, "pm.request.headers.upsert({ key: %s, value: String(value) });\n",
			strconv.Quote(targetKeyName(spec)))

	case TargetQuery:
		fmt.Fprintf(b, "const parsedUrl = new URL(pm.request.url.toString());\n")
		fmt.Fprintf(b, "parsedUrl.searchParams.set(%s, String(value));\n", strconv.Quote(targetKeyName(spec)))
		b.WriteString("pm.request.url.update(parsedUrl.toString());\n")

	case TargetUnsupported:
		log.Warn(component, spec.Name,
			"direct request mutation of %q is not supported; value written to a variable instead", spec.Target.String())
		writeVariable(b, spec)

	default:
		writeVariable(b, spec)
	}
}

// writeVariable stores the value, deep-setting a non-empty dotted target path
// inside the stored JSON and falling back to a flattened key when the stored
// value is not structured.
func writeVariable(b *strings.Builder, spec model.PropertyTransferSpec) {
	key := variableKey(spec.Target)
	path := pathexpr.Normalize(spec.TargetPath.Raw)

	if path == "" {
		fmt.Fprintf(b, "pm.collectionVariables.set(%s, typeof value === \"string\" ? value : JSON.stringify(value));\n",
			strconv.Quote(key))
		return
	}

	segments := strings.Split(path, ".")
	flatKey := key + "_" + strings.Join(segments, "_")

	fmt.Fprintf(b, "let stored = null;\n")
	fmt.Fprintf(b, "try {\n")
	fmt.Fprintf(b, "    stored = JSON.parse(pm.collectionVariables.get(%s) || \"{}\");\n", strconv.Quote(key))
	fmt.Fprintf(b, "} catch (err) {\n")
	fmt.Fprintf(b, "    stored = null;\n")
	fmt.Fprintf(b, "}\n")
	fmt.Fprintf(b, "if (stored && typeof stored === \"object\") {\n")

	ref := "stored"
	for _, seg := range segments[:len(segments)-1] {
		ref = ref + "." + seg
		fmt.Fprintf(b, "    %s = %s || {};\n", ref, ref)
	}
	fmt.Fprintf(b, "    %s.%s = value;\n", ref, segments[len(segments)-1])
	fmt.Fprintf(b, "    pm.collectionVariables.set(%s, JSON.stringify(stored));\n", strconv.Quote(key))
	fmt.Fprintf(b, "} else {\n")
	fmt.Fprintf(b, "    pm.collectionVariables.set(%s, typeof value === \"string\" ? value : JSON.stringify(value));\n",
		strconv.Quote(flatKey))
	fmt.Fprintf(b, "}\n")
}

// ClassifyTarget inspects the target reference and path for
// request-construction keywords. The classification fully determines where
// the fragment writes; it is also what flags a transfer step as pre-request.
func ClassifyTarget(spec model.PropertyTransferSpec) TargetKind {
	subject := strings.ToLower(spec.Target.Step + " " + spec.Target.Property + " " + spec.TargetPath.Raw)

	switch {
	case strings.Contains(subject, "header"):
		return TargetHeader
	case strings.Contains(subject, "query"):
		return TargetQuery
	case strings.Contains(subject, "endpoint"), strings.Contains(subject, "request body"):
		return TargetUnsupported
	default:
		return TargetVariable
	}
}

// resolveLanguage applies the unspecified-tag heuristic and surfaces the
// guess as a low-confidence note.
func resolveLanguage(p model.PathExpression, subject string, log *issue.Log) model.PathLanguage {
	if p.Language != model.PathUnspecified {
		return p.Language
	}

	guessed := model.GuessPathLanguage(p.Raw)
	log.Info(component, subject, "path language for %q was unspecified; guessed %s", p.Raw, guessed)

	return guessed
}

// variableKey builds the namespaced variable-store key for a step reference.
func variableKey(ref model.StepRef) string {
	if ref.Property == "" {
		return ref.Step
	}

	return ref.Step + "_" + ref.Property
}

// targetKeyName picks the header or query parameter name: the last segment
// of the target path if present, the referenced property otherwise.
func targetKeyName(spec model.PropertyTransferSpec) string {
	if p := pathexpr.Normalize(spec.TargetPath.Raw); p != "" {
		segs := strings.Split(p, ".")
		return segs[len(segs)-1]
	}

	return spec.Target.Property
}
