package main_test

import (
	"os"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("main", func() {

	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "cmd")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		err := os.RemoveAll(dir)
		Expect(err).ToNot(HaveOccurred())
	})

	run := func(env []string, args ...string) *gexec.Session {
		command := exec.Command(tweetgenCLI, args...)
		command.Dir = dir
		command.Env = env
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		return session
	}

	fullEnv := []string{
		"REPLICATE_API_TOKEN=r8_test",
		"TEXT_MODEL=owner/text-model",
		"IMAGE_MODEL=owner/image-model",
	}

	Context("when the credential is not set", func() {
		It("exits non-zero naming the accepted variables", func() {
			session := run([]string{"TEXT_MODEL=owner/text-model", "IMAGE_MODEL=owner/image-model"})
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say("REPLICATE_API_TOKEN"))
		})
	})

	Context("when a model identifier is not set", func() {
		It("exits non-zero naming the variable", func() {
			session := run([]string{"REPLICATE_API_TOKEN=r8_test", "IMAGE_MODEL=owner/image-model"})
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say("TEXT_MODEL"))
		})
	})

	Context("when the credential comes from the fallback variable", func() {
		It("gets past configuration loading", func() {
			session := run([]string{
				"REPLICATE_API_KEY=r8_test",
				"TEXT_MODEL=owner/text-model",
				"IMAGE_MODEL=owner/image-model",
			})
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say("loading prompts"))
		})
	})

	Context("when the seed is not an integer", func() {
		It("exits non-zero with a usage message", func() {
			session := run(fullEnv, "--seed", "not-a-number")
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say(`invalid --seed "not-a-number"`))
		})
	})

	Context("when the prompts directory is missing", func() {
		It("exits non-zero reporting the prompts stage", func() {
			session := run(fullEnv)
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say("loading prompts"))
		})
	})

	Context("when environment variables come from a .env file", func() {
		BeforeEach(func() {
			env := "REPLICATE_API_TOKEN=r8_test\nTEXT_MODEL=owner/text-model\nIMAGE_MODEL=owner/image-model\n"
			err := os.WriteFile(dir+"/.env", []byte(env), 0600)
			Expect(err).ToNot(HaveOccurred())
		})
		It("loads them before validating configuration", func() {
			session := run([]string{})
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say("loading prompts"))
		})
	})
})
