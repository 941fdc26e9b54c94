package docdata_soap

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	dsig "github.com/russellhaering/goxmldsig"
)

const redacted = "[REDACTED]"

// sensitiveElements are masked in logged payloads.
var sensitiveElements = map[string]bool{
	"creditCardNumber": true,
	"cardNumber":       true,
	"cvc2":             true,
	"cvv2":             true,
	"cid":              true,
	"pin":              true,
}

// redactPayload returns raw with the merchant password and card data masked.
// Payloads that cannot be parsed are returned unchanged.
func redactPayload(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return raw
	}

	changed := false
	for _, el := range doc.FindElements("//*") {
		name := localName(el.Tag)
		if name == "merchant" && el.SelectAttr("password") != nil {
			el.CreateAttr("password", redacted)
			changed = true
		}
		if sensitiveElements[name] && el.Text() != "" {
			el.SetText(redacted)
			changed = true
		}
	}
	if !changed {
		return raw
	}

	out := bytes.NewBuffer(nil)
	if _, err := doc.WriteTo(out); err != nil {
		return raw
	}
	return out.Bytes()
}

// payloadDigest fingerprints the operation element inside the SOAP Body:
// SHA-256 over its exclusive canonical form, base64 encoded. Whitespace and
// prefix choices outside the element do not change the digest.
func payloadDigest(raw []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return "", fmt.Errorf("parse soap xml: %w", err)
	}

	env := doc.Root()
	if env == nil {
		return "", fmt.Errorf("soap envelope missing")
	}
	body := findChild(env, "Body")
	if body == nil {
		return "", fmt.Errorf("soap Body not found")
	}
	children := body.ChildElements()
	if len(children) == 0 {
		return "", fmt.Errorf("soap Body is empty")
	}

	canon, err := exclusiveC14N(children[0])
	if err != nil {
		return "", fmt.Errorf("c14n body: %w", err)
	}
	sum := sha256.Sum256(canon)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// ============================================
// XML helpers
// ============================================

func findChild(parent *etree.Element, name string) *etree.Element {
	for _, c := range parent.ChildElements() {
		if localName(c.Tag) == name {
			return c
		}
	}
	return nil
}

func localName(tag string) string {
	if idx := strings.LastIndex(tag, ":"); idx >= 0 {
		return tag[idx+1:]
	}
	return tag
}

func exclusiveC14N(node *etree.Element) ([]byte, error) {
	canon := dsig.MakeC14N10ExclusiveCanonicalizerWithPrefixList("")
	return canon.Canonicalize(node)
}
