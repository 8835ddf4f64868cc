// genisr emits the NASM entry stubs for the first 32 x86 exception
// vectors, and optionally the 16 remapped hardware IRQ stubs
//
// Usage:
//
//	genisr gen                      # write isr.asm in the current directory
//	genisr gen -o kernel/isr.asm    # write elsewhere
//	genisr gen --annotate --irq     # comment every stub, also write irq.asm
//	genisr vectors                  # show the exception vector table
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colorfulnotion/isrgen/common"
	"github.com/colorfulnotion/isrgen/isr"
	log "github.com/colorfulnotion/isrgen/log"
	"github.com/colorfulnotion/isrgen/sink"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "genisr",
		Short: "x86 ISR stub generator",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		outPath  string
		annotate bool
		withIRQ  bool
		logLevel string
	)

	var genCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate the ISR stub assembly",
		Run: func(cmd *cobra.Command, args []string) {
			log.InitLogger(logLevel)

			doc := isr.Generate()
			if annotate {
				doc = isr.GenerateAnnotated()
			}
			log.Debug(log.GenMonitoring, "generated ISR stubs", "vectors", isr.NumVectors, "lines", len(doc.Lines()))
			if err := sink.WriteFile(outPath, doc); err != nil {
				log.Error(log.SinkMonitoring, "write failed", "path", outPath, "err", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", outPath)

			if withIRQ {
				irqPath := filepath.Join(filepath.Dir(outPath), "irq.asm")
				irqDoc := isr.GenerateIRQ()
				log.Debug(log.GenMonitoring, "generated IRQ stubs", "irqs", isr.NumIRQs, "lines", len(irqDoc.Lines()))
				if err := sink.WriteFile(irqPath, irqDoc); err != nil {
					log.Error(log.SinkMonitoring, "write failed", "path", irqPath, "err", err)
					os.Exit(1)
				}
				fmt.Printf("Wrote %s\n", irqPath)
			}
		},
	}
	genCmd.Flags().StringVarP(&outPath, "output", "o", "isr.asm", "Output path for the ISR stub file")
	genCmd.Flags().BoolVar(&annotate, "annotate", false, "Comment every stub with its exception name")
	genCmd.Flags().BoolVar(&withIRQ, "irq", false, "Also write irq.asm with the remapped IRQ stubs")
	genCmd.Flags().StringVar(&logLevel, "loglevel", "info", "Log level (trace|debug|info|warn|error)")

	var vectorsCmd = &cobra.Command{
		Use:   "vectors",
		Short: "Show the exception vector table",
		Run: func(cmd *cobra.Command, args []string) {
			tree := treeprint.New()
			tree.SetValue("x86 exception vectors 0-31")
			infos := isr.Vectors()
			for _, class := range []isr.Class{isr.ClassFault, isr.ClassTrap, isr.ClassAbort, isr.ClassInterrupt, isr.ClassReserved} {
				branch := tree.AddBranch(string(class))
				for _, info := range infos {
					if info.Class != class {
						continue
					}
					label := fmt.Sprintf("isr%-2d  %s", info.Vector, info.Name)
					if info.ErrorCode {
						label += "  [error code]"
					}
					branch.AddNode(label)
				}
			}
			fmt.Print(tree.String())
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			commit := Commit
			if commit == "none" {
				commit = common.GetCommitHash()
			}
			fmt.Printf("genisr %s (commit %s, built %s)\n", Version, commit, BuildTime)
		},
	}

	rootCmd.AddCommand(genCmd, vectorsCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
