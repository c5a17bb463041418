package pathexpr

import "text/template"

// xpathTemplate renders a self-contained extraction block. The block parses
// the source text as XML, evaluates the expression, and branches on the
// result type; any failure defaults the target to null instead of throwing.
var xpathTemplate = template.Must(template.New("xpath").Parse(`let {{.Target}} = null;
try {
    const {{.Target}}Doc = new DOMParser().parseFromString({{.Source}}, "text/xml");
    const {{.Target}}Result = {{.Target}}Doc.evaluate({{.Path}}, {{.Target}}Doc, null, XPathResult.ANY_TYPE, null);
    switch ({{.Target}}Result.resultType) {
        case XPathResult.STRING_TYPE:
            {{.Target}} = {{.Target}}Result.stringValue;
            break;
        case XPathResult.NUMBER_TYPE:
            {{.Target}} = {{.Target}}Result.numberValue;
            break;
        case XPathResult.BOOLEAN_TYPE:
            {{.Target}} = {{.Target}}Result.booleanValue;
            break;
        case XPathResult.ORDERED_NODE_ITERATOR_TYPE:
        case XPathResult.UNORDERED_NODE_ITERATOR_TYPE: {
            {{.Target}} = [];
            let {{.Target}}Node = {{.Target}}Result.iterateNext();
            while ({{.Target}}Node) {
                {{.Target}}.push({{.Target}}Node.textContent);
                {{.Target}}Node = {{.Target}}Result.iterateNext();
            }
            break;
        }
        default:
            {{.Target}} = {{.Target}}Result.singleNodeValue ? {{.Target}}Result.singleNodeValue.textContent : null;
    }
} catch (err) {
    {{.Target}} = null;
    console.warn("XPath extraction failed for " + {{.Path}} + ":", err);
}
console.log("Extracted {{.Target}}:", {{.Target}});`))

// xpathData carries the template fields. Path is a quoted JS string literal.
type xpathData struct {
	Source string
	Target string
	Path   string
}
