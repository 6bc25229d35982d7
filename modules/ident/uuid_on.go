//go:build !hya_nouuid

package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var wellKnownNamespaces = map[string]uuid.UUID{
	"dns":  uuid.NameSpaceDNS,
	"url":  uuid.NameSpaceURL,
	"oid":  uuid.NameSpaceOID,
	"x500": uuid.NameSpaceX500,
}

func uuid5(namespace, name string) (string, error) {
	ns, ok := wellKnownNamespaces[strings.ToLower(namespace)]
	if !ok {
		var err error
		if ns, err = uuid.Parse(namespace); err != nil {
			return "", fmt.Errorf("invalid UUID namespace %q: %w", namespace, err)
		}
	}
	return uuid.NewSHA1(ns, []byte(name)).String(), nil
}
