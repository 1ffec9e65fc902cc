package parser

import (
	"strings"

	"cxxdecl/pkg/ast"
)

// ParseDocComment splits a cleaned docstring into Doxygen tags. Untagged
// text before the first tag is the brief line followed by the details.
func ParseDocComment(docstring string) *ast.DocComment {
	if strings.TrimSpace(docstring) == "" {
		return nil
	}

	doc := &ast.DocComment{
		Params:     make(map[string]string),
		CustomTags: make(map[string]string),
	}

	var currentTag string
	var currentContent []string

	for _, line := range strings.Split(docstring, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "@") || strings.HasPrefix(line, "\\") {
			if currentTag != "" {
				setDocTag(doc, currentTag, strings.Join(currentContent, " "))
			}
			parts := strings.SplitN(line[1:], " ", 2)
			currentTag = parts[0]
			currentContent = nil
			if len(parts) > 1 {
				currentContent = append(currentContent, strings.TrimSpace(parts[1]))
			}
			continue
		}

		switch {
		case currentTag != "":
			currentContent = append(currentContent, line)
		case doc.Brief == "":
			doc.Brief = line
		case doc.Detailed == "":
			doc.Detailed = line
		default:
			doc.Detailed += " " + line
		}
	}

	if currentTag != "" {
		setDocTag(doc, currentTag, strings.Join(currentContent, " "))
	}

	return doc
}

func setDocTag(doc *ast.DocComment, tag, content string) {
	switch tag {
	case "brief":
		doc.Brief = content
	case "details", "detailed":
		doc.Detailed = content
	case "param", "param[in]", "param[out]", "param[in,out]", "tparam":
		parts := strings.SplitN(content, " ", 2)
		if len(parts) == 2 {
			doc.Params[parts[0]] = strings.TrimSpace(parts[1])
		}
	case "return", "returns":
		doc.Returns = content
	case "throw", "throws", "exception":
		doc.Throws = append(doc.Throws, content)
	case "deprecated":
		doc.Deprecated = content
	case "see", "sa":
		doc.See = append(doc.See, content)
	case "since":
		doc.Since = content
	default:
		doc.CustomTags[tag] = content
	}
}

// Brief returns the brief description of a docstring
func Brief(docstring string) string {
	if doc := ParseDocComment(docstring); doc != nil {
		return doc.Brief
	}
	return ""
}
