package mcpserver

// Tool descriptions with interpretation guidance for LLMs.

func describeFunctionSpaces() string {
	return `Extracts the tree of function spaces of one source file with their metrics.

A space is the file itself (kind unit) or a function, closure, class, struct,
trait, impl, interface or namespace inside it. Every space reports "own"
metrics for the code directly inside it and "metrics" that include every
nested space.

USE WHEN:
- Checking the complexity of a single file or snippet before and after a refactor
- Finding which function of a file is the hardest to read
- Comparing nested closures against their enclosing function

INTERPRETING RESULTS:
- cyclomatic > 10: many independent paths, hard to test
- cognitive > 15: hard to understand, flatten conditions or extract helpers
- max_nesting > 4: deeply nested, consider early returns
- mi.visual_studio < 20: low maintainability (0-100 scale)
- halstead.bugs estimates delivered defects from operator/operand counts

INPUT:
- path: file to read, or the name used for language detection with source
- source: inline code; when set, path is not read
- language: overrides detection (see the languages tool)`
}

func describeOperatorsOperands() string {
	return `Lists the distinct operators and operands of every space of one source file.

USE WHEN:
- Explaining a Halstead metric value
- Checking which tokens a language counts as operators

INTERPRETING RESULTS:
- operators and operands are distinct, in first-seen order, and include nested spaces
- tokens lists the space's own occurrences in source order with their role
- the declared name of a space is not one of its operands

INPUT:
- path, source and language as in function_spaces`
}

func describeLanguages() string {
	return `Lists the supported languages with their file extensions and editor modes.

USE WHEN:
- Choosing the language argument of another tool
- Checking whether a file type can be analyzed

INTERPRETING RESULTS:
- preprocessed languages (C, C++) mask empty macros collected from their includes`
}

func describeAnalyzeProject() string {
	return `Analyzes every supported file under the given paths and summarizes function metrics.

USE WHEN:
- Assessing the overall complexity of a codebase
- Listing the functions that exceed complexity thresholds

INTERPRETING RESULTS:
- summary.cyclomatic and summary.cognitive give mean, p50, p90, p95 and max over functions
- violations lists functions whose own metrics exceed a threshold
- errors lists files that could not be read or parsed; other files are still analyzed

INPUT:
- paths: files or directories, defaults to the current directory
- cyclomatic_threshold, cognitive_threshold, nesting_threshold: default 10, 15, 4
- include_spaces: include every file's space tree (large)`
}
