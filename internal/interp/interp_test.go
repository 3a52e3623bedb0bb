package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	var sb strings.Builder
	err := New(&sb).Run(src, "<test>")
	require.NoError(t, err)
	return sb.String()
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	var sb strings.Builder
	err := New(&sb).Run(src, "<test>")
	require.Error(t, err)
	return err
}

func TestPrintString(t *testing.T) {
	assert.Equal(t, "問天地好在。\n", run(t, "吾有一言。曰「「問天地好在。」」。書之。"))
}

func TestArithmeticNamingAssignment(t *testing.T) {
	out := run(t, "加一以二。名之曰「甲」。加「甲」以一。昔之「甲」者。今其是矣。夫「甲」。書之。")
	assert.Equal(t, "4\n", out)
}

func TestIfComparesStagedValue(t *testing.T) {
	out := run(t, "加一以二。若其等於三者。吾有一言。曰「「是矣。」」。書之。若非。吾有一言。曰「「非也。」」。書之。云云。")
	assert.Equal(t, "是矣。\n", out)
}

func TestRepeatLoop(t *testing.T) {
	out := run(t, "吾有一數。曰一。名之曰「甲」。為是三遍。加「甲」以一。昔之「甲」者。今其是矣。云云。夫「甲」。書之。")
	assert.Equal(t, "4\n", out)
}

func TestWhileLoopBreaks(t *testing.T) {
	out := run(t, "有數一。名之曰「戊」。恆為是。若「戊」等於三者乃止也。加一以「戊」。昔之「戊」者。今其是矣。云云。夫「戊」。書之。")
	assert.Equal(t, "3\n", out)
}

func TestFunctionCallTakesStagedArguments(t *testing.T) {
	src := `吾有一術。名之曰「加」。欲行是術。必先得二數。曰「甲」曰「乙」。乃行是術曰。
	加「甲」以「乙」。乃得矣。
是謂「加」之術也。

夫一。夫二。取二以施「加」。書之。`
	assert.Equal(t, "3\n", run(t, src))
}

func TestPartialApplication(t *testing.T) {
	src := `吾有一術。名之曰「相加」。欲行是術。必先得二數。曰「甲」曰「乙」。乃行是術曰。
	加「甲」以「乙」。乃得矣。
是謂「相加」之術也。

施「相加」於一。名之曰「加一」。施「加一」於二。書之。`
	assert.Equal(t, "3\n", run(t, src))
}

func TestAssignmentReachesEnclosingScopes(t *testing.T) {
	src := `吾有一數。曰一。名之曰「甲」。
昔之「甲」者。今二是也。
夫「甲」。書之。

吾有一數。曰一。名之曰「乙」。
吾有一術。名之曰「改」。欲行是術。乃行是術曰。
	昔之「乙」者。今三是矣。
是謂「改」之術也。
施「改」。噫。
夫「乙」。書之。

吾有一術。名之曰「外」。欲行是術。乃行是術曰。
	吾有一數。曰一。名之曰「丙」。
	吾有一術。名之曰「內」。欲行是術。乃行是術曰。
		昔之「丙」者。今四是矣。
	是謂「內」之術也。
	施「內」。噫。
	乃得「丙」。
是謂「外」之術也。
施「外」。書之。`
	assert.Equal(t, "2\n3\n4\n", run(t, src))
}

func TestBareParticleClosesInnerIfClause(t *testing.T) {
	src := `吾有一術。名之曰「試」。欲行是術。必先得一數。曰「甲」。乃行是術曰。
	有數零。名之曰「總」。
	若「甲」等於零者。乃得「總」。
	若非。
		若「甲」等於一者。昔之「甲」者。今二也。
		若非。昔之「甲」者。今三是也。
		加「總」以一。名之曰「乙」。
		昔之「總」者。今「乙」是也。
		乃得「總」。
是謂「試」之術也。
施「試」於一。書之。`
	assert.Equal(t, "1\n", run(t, src))
}

func TestIfNegatedAndChained(t *testing.T) {
	src := `夫零。
若其不然者。夫一。書之。
若非。夫二。書之。
云云。

吾有一數。曰二。名之曰「甲」。
若「甲」等於一者。夫一。書之。
或若「甲」等於二者。夫二。書之。
若非。夫三。書之。
云云。`
	assert.Equal(t, "1\n2\n", run(t, src))
}

func TestReturnAfterLoopBreak(t *testing.T) {
	src := `今有一術。名之曰「甲」。欲行是術。乃行是術曰。
	恆為是。
		乃止。
	乃得一。
是謂「甲」之術也。

今有一術。名之曰「乙」。欲行是術。乃行是術曰。
	為是一遍。
		乃止是遍。
	乃得二。
是謂「乙」之術也。

施「甲」。書之。
施「乙」。書之。`
	assert.Equal(t, "1\n2\n", run(t, src))
}

func TestListOperations(t *testing.T) {
	src := `吾有一列。名之曰「冊」。
充「冊」以一以二以三。
夫「冊」之長。書之。
夫「冊」之二。書之。
凡「冊」中之「頁」。夫「頁」。書之。云云。`
	assert.Equal(t, "3\n2\n1\n2\n3\n", run(t, src))
}

func TestListIndexAssignAndDelete(t *testing.T) {
	src := `吾有一列。名之曰「冊」。
充「冊」以一以二以三。
昔之「冊」之二者。今九是矣。
夫「冊」。書之。
昔之「冊」之一者。今不復存矣。
夫「冊」。書之。`
	assert.Equal(t, "[ 1, 9, 3 ]\n[ 9, 3 ]\n", run(t, src))
}

func TestConcatStringsAndLists(t *testing.T) {
	src := `吾有二言。曰「「甲」」。曰「「乙」」。名之曰「首」曰「尾」。
銜「首」以「尾」。書之。
吾有一列。名之曰「前」。充「前」以一。
吾有一列。名之曰「後」。充「後」以二。
銜「前」以「後」。書之。`
	assert.Equal(t, "甲乙\n[ 1, 2 ]\n", run(t, src))
}

func TestDivisionStaysExactOrFallsToFraction(t *testing.T) {
	assert.Equal(t, "3\n", run(t, "除六以二。書之。"))
	assert.Equal(t, "3.5\n", run(t, "除七以二。書之。"))
	assert.Equal(t, "1\n", run(t, "除七以三。所餘幾何。書之。"))
}

func TestOperandSwapWith於(t *testing.T) {
	assert.Equal(t, "2\n", run(t, "減三於五。書之。"))
	assert.Equal(t, "-2\n", run(t, "減五以三。減其於零。書之。"))
}

func TestNegation(t *testing.T) {
	assert.Equal(t, "false\n", run(t, "變陽。書之。"))
	assert.Equal(t, "true\n", run(t, "變陰。書之。"))
}

func TestBigIntegerArithmeticIsExact(t *testing.T) {
	// 一極 is 10^48, far beyond any fixed-width integer.
	assert.Equal(t, "1"+strings.Repeat("0", 48)+"\n", run(t, "夫一極。書之。"))
	assert.Equal(t, "2"+strings.Repeat("0", 48)+"\n", run(t, "加一極以一極。書之。"))
}

func TestFractionLiterals(t *testing.T) {
	assert.Equal(t, "1.23\n", run(t, "夫一又二分三釐。書之。"))
	assert.Equal(t, "0.3\n", run(t, "夫三分。書之。"))
}

func TestBooleanAndNullPrinting(t *testing.T) {
	assert.Equal(t, "true\n", run(t, "吾有一爻。曰陽。書之。"))
	assert.Equal(t, "null\n", run(t, "吾有一元。書之。"))
}

func TestDefaultDeclarationValues(t *testing.T) {
	assert.Equal(t, "0\n", run(t, "吾有一數。書之。"))
	assert.Equal(t, "\n", run(t, "吾有一言。書之。"))
	assert.Equal(t, "false\n", run(t, "吾有一爻。書之。"))
}

func TestUndefinedNameFailsWithPosition(t *testing.T) {
	err := runErr(t, "夫「無名」。書之。")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Msg, "無名")
	assert.Positive(t, ie.Off)
}

func TestDivisionByZeroFails(t *testing.T) {
	err := runErr(t, "除一以零。書之。")
	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Contains(t, ie.Msg, "division by zero")
}

func TestRedundantSignInLiteralIsLexError(t *testing.T) {
	var sb strings.Builder
	err := New(&sb).Run("夫負負一。書之。", "<test>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "非法數")
}

func TestUnsupportedConstructsFail(t *testing.T) {
	for _, src := range []string{
		"吾有一物。",
		"吾有一術。名之曰「錯」。欲行是術。必先得其餘數。曰「甲」。乃行是術曰。乃歸空無。是謂「錯」之術也。",
	} {
		runErr(t, src)
	}
}

func TestStagePersistsAcrossRuns(t *testing.T) {
	var sb strings.Builder
	in := New(&sb)
	require.NoError(t, in.Run("吾有一數。曰二。名之曰「甲」。", "<test>"))
	require.NoError(t, in.Run("加「甲」以三。書之。", "<test>"))
	assert.Equal(t, "5\n", sb.String())
}
