package main

// These constants hold the "long" description of a subcommand. These get printed when running `--help`, for example.
const (
	descriptionSpotter = `Spotter lists the test cases that ran on a Buildkite build.

It downloads the build's JUnit XML artifacts & prints one test identifier per line, ready to be
piped into other tooling.

Example use:

	spotter https://buildkite.com/my-org/my-pipeline/builds/1984

	spotter --failures-only https://buildkite.com/my-org/my-pipeline/builds/1984`

	descriptionArtifact = `'spotter artifact' fetches a single test result artifact & writes its raw contents to
stdout. The build is located by commit SHA; when running on a Buildkite agent, the organization,
pipeline & commit default to the agent's own environment.

Example use:

	spotter artifact --organization my-org --pipeline my-pipeline --commit 0fc9d4b

	spotter artifact --output junit.xml`

	descriptionParse = `'spotter parse' extracts test identifiers from local JUnit XML files instead of build
artifacts. File arguments support glob patterns, including '**' for recursive matching.

Example use:

	spotter parse tmp/test-results/**/*.xml`
)
