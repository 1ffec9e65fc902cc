package document_test

import (
	"fmt"
	"log"

	"cxxdecl/pkg/ast"
	"cxxdecl/pkg/document"
)

func ExampleNewFromContent() {
	headerContent := `
#pragma once

namespace Graphics {

class Renderer {
public:
    /// Creates an uninitialized renderer.
    Renderer();
    ~Renderer();

    void setWidth(int width);
    int getWidth() const;

private:
    int width_;
    bool initialized_;
};

} // namespace Graphics
`

	doc, err := document.NewFromContent("renderer.hpp", headerContent)
	if err != nil {
		log.Fatalf("Failed to create document: %v", err)
	}
	fmt.Println(doc)

	renderer, err := doc.Structure("Renderer")
	if err != nil {
		log.Fatalf("Failed to find Renderer: %v", err)
	}
	for _, member := range renderer.Members {
		switch m := member.(type) {
		case *ast.Field:
			fmt.Println(m.Accessibility, m.Signature())
		case *ast.Method:
			fmt.Println(m.Accessibility, m.Signature(renderer.Name))
		}
	}

	_, err = doc.Enum("Renderer")
	fmt.Println(err)

	// Output:
	// SourceFile[renderer.hpp]: 1 declarations, 6 members, 16.7% documented
	// public Renderer()
	// public ~Renderer()
	// public void setWidth(int width)
	// public int getWidth() const
	// private int width_
	// private bool initialized_
	// Renderer is not declared as enum
}
