package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const objectKeyFlag = "key"

var (
	// objectCmd represents the object command.
	objectCmd = &cobra.Command{
		Use:   "object",
		Short: "Operations with objects",
		Long:  `Operations with objects`,
	}

	objectPutCmd = &cobra.Command{
		Use:   "put",
		Short: "Store object on the node",
		Long:  "Store object on the node",
		Run:   putObject,
	}

	objectGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Get object from the node",
		Long:  "Get object from the node",
		Run:   getObject,
	}

	objectHeadCmd = &cobra.Command{
		Use:   "head",
		Short: "Check object availability and print its size",
		Long:  "Check object availability and print its size",
		Run:   headObject,
	}

	objectDelCmd = &cobra.Command{
		Use:     "delete",
		Aliases: []string{"del"},
		Short:   "Delete object from the node",
		Long:    "Delete object from the node",
		Run:     deleteObject,
	}
)

func initObjectPutCmd() {
	flags := objectPutCmd.Flags()

	flags.String(objectKeyFlag, "", "Object key")
	_ = objectPutCmd.MarkFlagRequired(objectKeyFlag)

	flags.String("file", "", "File with object payload. Default: stdin.")
	_ = objectPutCmd.MarkFlagFilename("file")
}

func initObjectGetCmd() {
	flags := objectGetCmd.Flags()

	flags.String(objectKeyFlag, "", "Object key")
	_ = objectGetCmd.MarkFlagRequired(objectKeyFlag)

	flags.String("file", "", "File to write object payload to. Default: stdout.")
	_ = objectGetCmd.MarkFlagFilename("file")
}

func initObjectHeadCmd() {
	flags := objectHeadCmd.Flags()

	flags.String(objectKeyFlag, "", "Object key")
	_ = objectHeadCmd.MarkFlagRequired(objectKeyFlag)
}

func initObjectDeleteCmd() {
	flags := objectDelCmd.Flags()

	flags.String(objectKeyFlag, "", "Object key")
	_ = objectDelCmd.MarkFlagRequired(objectKeyFlag)
}

func init() {
	objectChildCommands := []*cobra.Command{
		objectPutCmd,
		objectGetCmd,
		objectHeadCmd,
		objectDelCmd,
	}

	rootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(objectChildCommands...)

	initObjectPutCmd()
	initObjectGetCmd()
	initObjectHeadCmd()
	initObjectDeleteCmd()
}

func putObject(cmd *cobra.Command, _ []string) {
	key := cmd.Flag(objectKeyFlag).Value.String()

	var (
		payload io.Reader = os.Stdin
		source            = "<stdin>"
	)

	filename := cmd.Flag("file").Value.String()
	if filename != "" {
		f, err := os.OpenFile(filename, os.O_RDONLY, os.ModePerm)
		if err != nil {
			exitOnErr(cmd, fmt.Errorf("can't open file '%s': %w", filename, err))
		}

		defer f.Close()

		payload = f
		source = filename
	}

	data, err := io.ReadAll(payload)
	exitOnErr(cmd, errf("can't read payload: %w", err))

	cli, err := newNodeClient()
	exitOnErr(cmd, err)

	err = cli.putObject(key, bytes.NewReader(data))
	exitOnErr(cmd, errf("request error: %w", err))

	cmd.Printf("[%s] Object successfully stored\n", source)
	cmd.Printf("  key: %s\n  size: %d\n", key, len(data))
}

func getObject(cmd *cobra.Command, _ []string) {
	key := cmd.Flag(objectKeyFlag).Value.String()

	var out io.Writer
	filename := cmd.Flag("file").Value.String()
	if filename == "" {
		out = os.Stdout
	} else {
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.ModePerm)
		if err != nil {
			exitOnErr(cmd, fmt.Errorf("can't open file '%s': %w", filename, err))
		}

		defer f.Close()

		out = f
	}

	cli, err := newNodeClient()
	exitOnErr(cmd, err)

	n, err := cli.getObject(key, out)
	exitOnErr(cmd, errf("request error: %w", err))

	if filename != "" {
		cmd.Printf("[%s] Object successfully saved\n", filename)
		cmd.Printf("  key: %s\n  size: %d\n", key, n)
	}
}

func headObject(cmd *cobra.Command, _ []string) {
	key := cmd.Flag(objectKeyFlag).Value.String()

	cli, err := newNodeClient()
	exitOnErr(cmd, err)

	size, err := cli.headObject(key)
	exitOnErr(cmd, errf("request error: %w", err))

	cmd.Printf("Object is available\n")
	cmd.Printf("  key: %s\n  size: %d\n", key, size)
}

func deleteObject(cmd *cobra.Command, _ []string) {
	key := cmd.Flag(objectKeyFlag).Value.String()

	cli, err := newNodeClient()
	exitOnErr(cmd, err)

	err = cli.deleteObject(key)
	exitOnErr(cmd, errf("request error: %w", err))

	cmd.Println("Object removed successfully.")
	cmd.Printf("  key: %s\n", key)
}
