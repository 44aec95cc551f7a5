package main

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"qvecsim/remote"
)

var (
	serveAddr string
	serveSeed int64

	submitServer string
	submitShots  int
	submitNoWait bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the in-process backend as a job service",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := serveSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		backend := remote.NewLocalBackend(seed)
		log.Info("serving", "addr", serveAddr, "backend", backend.Name())
		return http.ListenAndServe(serveAddr, remote.Handler(backend))
	},
}

var submitCmd = &cobra.Command{
	Use:   "submit <file.qasm>",
	Short: "Submit a circuit to a job service and print the counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}

		client := remote.NewClient(submitServer, nil)
		id, err := client.Submit(cmd.Context(), c, submitShots)
		if err != nil {
			return err
		}
		log.Info("submitted", "id", id, "shots", submitShots)
		if submitNoWait {
			fmt.Println(id)
			return nil
		}

		job, err := client.Wait(cmd.Context(), id, 500*time.Millisecond)
		if err != nil {
			return err
		}
		if job.Status != remote.StatusCompleted {
			return fmt.Errorf("job %s ended %s: %s", job.ID, job.Status, job.Error)
		}

		labels := make([]string, 0, len(job.Counts))
		for label := range job.Counts {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("%s  %d\n", label, job.Counts[label])
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "sampler seed, 0 uses the current time")
	submitCmd.Flags().StringVar(&submitServer, "server", "http://localhost:8080", "job service base URL")
	submitCmd.Flags().IntVarP(&submitShots, "shots", "n", 1024, "number of shots")
	submitCmd.Flags().BoolVar(&submitNoWait, "no-wait", false, "print the job ID without waiting")
	rootCmd.AddCommand(serveCmd, submitCmd)
}
