// Package plist produces and inspects the Info.plist entries that register
// a deep link scheme with macOS.
package plist

import (
	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/beevik/etree"
)

const (
	keyURLTypes   = "CFBundleURLTypes"
	keyURLName    = "CFBundleURLName"
	keyURLSchemes = "CFBundleURLSchemes"

	doctype = `DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`
)

// URLTypes returns a plist document declaring scheme under CFBundleURLTypes.
// identifier becomes CFBundleURLName and is omitted when empty.
func URLTypes(scheme, identifier string) (string, error) {
	if scheme == "" {
		return "", errors.New(errors.ErrInvalidInput, "scheme cannot be empty")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(doctype)

	root := doc.CreateElement("plist")
	root.CreateAttr("version", "1.0")
	top := root.CreateElement("dict")
	top.CreateElement("key").SetText(keyURLTypes)

	urlType := top.CreateElement("array").CreateElement("dict")
	if identifier != "" {
		urlType.CreateElement("key").SetText(keyURLName)
		urlType.CreateElement("string").SetText(identifier)
	}
	urlType.CreateElement("key").SetText(keyURLSchemes)
	urlType.CreateElement("array").CreateElement("string").SetText(scheme)

	doc.Indent(4)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to write plist")
	}
	return out, nil
}

// Schemes lists every scheme an Info.plist registers under CFBundleURLSchemes.
func Schemes(data []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse plist")
	}

	var schemes []string
	for _, key := range doc.FindElements("//key") {
		if key.Text() != keyURLSchemes {
			continue
		}
		array := nextSibling(key)
		if array == nil || array.Tag != "array" {
			continue
		}
		for _, s := range array.SelectElements("string") {
			schemes = append(schemes, s.Text())
		}
	}
	return schemes, nil
}

// Registers reports whether the plist registers scheme, compared exactly.
func Registers(data []byte, scheme string) (bool, error) {
	schemes, err := Schemes(data)
	if err != nil {
		return false, err
	}
	for _, s := range schemes {
		if s == scheme {
			return true, nil
		}
	}
	return false, nil
}

func nextSibling(el *etree.Element) *etree.Element {
	parent := el.Parent()
	if parent == nil {
		return nil
	}
	children := parent.ChildElements()
	for i, c := range children {
		if c == el && i+1 < len(children) {
			return children[i+1]
		}
	}
	return nil
}
