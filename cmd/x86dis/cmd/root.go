package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "x86dis",
	Short: "x86/x86-64 disassembler",
	Long:  `x86dis decodes x86, x86-64, and 16-bit machine code into structured, human-readable instructions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "decode",
		Title: "Decoding",
	})

	rootCmd.AddCommand(disassembleCmd)
}
