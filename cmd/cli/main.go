package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v1 "pingerd/api/v1"
	"pingerd/api/v1/objects"
	"pingerd/api/v1/sdk"
	metav1 "pingerd/pkg/meta/v1"
)

func apiURL() string {
	if url := os.Getenv("PINGERD_API_URL"); url != "" {
		return url
	}

	pwd, err := os.Getwd()
	if err == nil {
		viper.SetConfigType("yaml")
		viper.SetConfigName("pingctl")
		viper.AddConfigPath(pwd)

		if err := viper.ReadInConfig(); err == nil {
			if url := viper.GetString("api_url"); url != "" {
				return url
			}
		}
	}

	return "http://localhost:8080"
}

func newClient() v1.V1 {
	client, err := sdk.NewWithOpts(sdk.WithHTTPAddr(apiURL()))
	if err != nil {
		panic(err)
	}

	return client
}

func main() {
	var rootCmd = &cobra.Command{Use: "pingctl"}

	var (
		startCategories []string
		startFile       string
	)

	var cmdStart = &cobra.Command{
		Use:   "start [url ...]",
		Short: "submit a ping campaign",
		Run: func(cmd *cobra.Command, args []string) {
			urls := args

			if startFile != "" {
				data, err := ioutil.ReadFile(startFile)
				if err != nil {
					panic(err)
				}

				for _, line := range strings.Split(string(data), "\n") {
					line = strings.TrimSpace(line)
					if line == "" || strings.HasPrefix(line, "#") {
						continue
					}

					urls = append(urls, line)
				}
			}

			resp, err := newClient().Campaigns().Create(&objects.RequestPostCampaign{
				URLs:       urls,
				Categories: startCategories,
			})
			if err != nil {
				panic(err)
			}

			fmt.Printf("campaign %s started, %d jobs\n", resp.ID, resp.Total)
		},
	}

	cmdStart.Flags().StringSliceVarP(&startCategories, "categories", "c", nil, "endpoint categories, all when empty")
	cmdStart.Flags().StringVarP(&startFile, "file", "f", "", "file with one url per line")

	var cmdWatch = &cobra.Command{
		Use:   "watch <campaign-id>",
		Short: "follow campaign progress until it finishes",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := newClient()

			for {
				bo := backoff.NewExponentialBackOff()
				bo.MaxInterval = time.Second * 5
				bo.MaxElapsedTime = time.Second * 30

				var snapshot *metav1.CampaignSnapshot

				if err := backoff.Retry(func() error {
					s, e := client.Campaigns().Progress(args[0])
					if e != nil {
						return e
					}

					snapshot = s
					return nil
				}, bo); err != nil {
					panic(err)
				}

				fmt.Printf("%s %.1f%% (%d/%d) ok=%d failed=%d rate=%.1f/s eta=%s\n",
					snapshot.Status, snapshot.Percentage, snapshot.Processed, snapshot.Total,
					snapshot.Successful, snapshot.Failed, snapshot.ProcessingRate, snapshot.EstimatedTimeRemaining,
				)

				if snapshot.Status.Terminal() {
					return
				}

				time.Sleep(time.Second)
			}
		},
	}

	var cmdCancel = &cobra.Command{
		Use:   "cancel <campaign-id>",
		Short: "cancel a running campaign",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := newClient().Campaigns().Cancel(args[0]); err != nil {
				panic(err)
			}

			fmt.Println("cancelled")
		},
	}

	var cmdCategories = &cobra.Command{
		Use:   "categories",
		Short: "list endpoint categories",
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := newClient().Categories().Stats()
			if err != nil {
				panic(err)
			}

			for category, count := range stats.Categories {
				fmt.Printf("%s\t%d\n", category, count)
			}

			fmt.Printf("total\t%d\n", stats.Total)
		},
	}

	rootCmd.AddCommand(cmdStart, cmdWatch, cmdCancel, cmdCategories)
	rootCmd.Execute()
}
