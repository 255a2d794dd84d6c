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

func newRemoveCmd() *cobra.Command {
	var offset, length, version uint64
	cmd := &cobra.Command{
		Use:   "remove <object>",
		Short: "Retire a previously written version from the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/objects/%s/extents?offset=%d&length=%d&version=%d", serverAddr, args[0], offset, length, version)
			req, err := http.NewRequest(http.MethodDelete, url, nil)
			if err != nil {
				return err
			}
			resp, err := httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusNoContent {
				body, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("remove failed: %s: %s", resp.Status, body)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&offset, "offset", 0, "byte offset to remove from")
	cmd.Flags().Uint64Var(&length, "length", 0, "number of bytes to remove")
	cmd.Flags().Uint64Var(&version, "version", 0, "version token returned by write")
	return cmd
}
