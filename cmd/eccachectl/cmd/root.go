// Copyright 2018 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverAddr string
	httpClient = &http.Client{Timeout: 10 * time.Second}
)

// Root builds the eccachectl command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "eccachectl",
		Short: "Operate a running extent cache node",
	}
	root.PersistentFlags().StringVar(&serverAddr, "server", "http://127.0.0.1:7070", "dispatch server base URL")

	root.AddCommand(newWriteCmd())
	root.AddCommand(newReadCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newClearCmd())
	return root
}
