package driver

import (
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

const helloProgram = `import "ifj25" for Ifj
class Program {
    static main() {
        var x = 1
        Ifj.write(x)
        return x
    }
}
`

func TestCompileHelloProgram(t *testing.T) {
	out, err := Compile(helloProgram, false)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

const ifWhileProgram = `import "ifj25" for Ifj
class Program {
    static count(limit) {
        var i = 0
        while (i < limit) {
            var doubled = i * 2
            Ifj.write(doubled)
            i = i + 1
        }
        return i
    }
    static main() {
        return count(3)
    }
}
`

func TestCompileWhileLoopHoistsDefvars(t *testing.T) {
	out, err := Compile(ifWhileProgram, false)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

const undefinedFunctionProgram = `import "ifj25" for Ifj
class Program {
    static main() {
        return missing(1)
    }
}
`

func TestUndefinedFunctionIsReportedAtEndOfParse(t *testing.T) {
	_, err := Compile(undefinedFunctionProgram, false)
	require.Error(t, err)
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
