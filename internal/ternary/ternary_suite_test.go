package ternary_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestTernary(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ternary Suite")
}
