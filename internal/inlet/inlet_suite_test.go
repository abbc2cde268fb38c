package inlet_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInlet(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inlet Suite")
}
