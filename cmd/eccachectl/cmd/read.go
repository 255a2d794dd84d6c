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
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	var offset, length uint64
	cmd := &cobra.Command{
		Use:   "read <object>",
		Short: "Read a byte range of an object",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/objects/%s/extents?offset=%d&length=%d", serverAddr, args[0], offset, length)
			resp, err := httpClient.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("read failed: %s: %s", resp.Status, body)
			}
			_, err = c.OutOrStdout().Write(body)
			return err
		},
	}
	cmd.Flags().Uint64Var(&offset, "offset", 0, "byte offset to read from")
	cmd.Flags().Uint64Var(&length, "length", 0, "number of bytes to read")
	return cmd
}
