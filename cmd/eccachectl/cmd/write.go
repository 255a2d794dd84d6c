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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newWriteCmd() *cobra.Command {
	var offset uint64
	cmd := &cobra.Command{
		Use:   "write <object> <data>",
		Short: "Write data to an object at the given offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/objects/%s/extents?offset=%s", serverAddr, args[0], strconv.FormatUint(offset, 10))
			req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(args[1]))
			if err != nil {
				return err
			}
			resp, err := httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("write failed: %s: %s", resp.Status, body)
			}
			fmt.Println(string(body))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&offset, "offset", 0, "byte offset to write at")
	return cmd
}
