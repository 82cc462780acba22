package stubgen

// LegalNotice provides license notices for stubgen itself and any third-party
// dependencies.
const LegalNotice = `stubgen

Copyright (c) 2025 The stubgen authors

Licensed under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.


================================================================================
stubgen depends on the following third-party software:
================================================================================

Go and the Go standard library

https://golang.org/

Copyright (c) 2009 The Go Authors. All rights reserved.
Licensed under a BSD-style license.

--------------------------------------------------------------------------------

Cobra and pflag

https://github.com/spf13/cobra
https://github.com/spf13/pflag

Copyright (c) 2013 Steve Francia
Licensed under the terms of the Apache License, Version 2.0.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>
Licensed under a BSD-style license.

--------------------------------------------------------------------------------

color

https://github.com/fatih/color

Copyright (c) 2013 Fatih Arslan
Licensed under the terms of the MIT License.

--------------------------------------------------------------------------------

go-isatty

https://github.com/mattn/go-isatty

Copyright (c) Yasuhiro MATSUMOTO <mattn.jp@gmail.com>
Licensed under the terms of the MIT License.

--------------------------------------------------------------------------------

doublestar

https://github.com/bmatcuk/doublestar

Copyright (c) 2014 Bob Matcuk
Licensed under the terms of the MIT License.

--------------------------------------------------------------------------------

go-humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008 Dustin Sallings <dustin@spy.net>
Licensed under the terms of the MIT License.

--------------------------------------------------------------------------------

basex

https://github.com/eknkc/basex

Copyright (c) 2017 Ekin Koc
Licensed under the terms of the MIT License.

--------------------------------------------------------------------------------

godotenv

https://github.com/joho/godotenv

Copyright (c) 2013 John Barton
Licensed under the terms of the MIT License.

--------------------------------------------------------------------------------

The Go Protocol Buffers runtime and code generators

https://github.com/protocolbuffers/protobuf-go
https://github.com/grpc/grpc-go

Copyright (c) 2018 The Go Authors. All rights reserved.
Licensed under a BSD-style license.

--------------------------------------------------------------------------------

YAML support for the Go language

https://gopkg.in/yaml.v2

Copyright (c) 2011-2019 Canonical Ltd.
Licensed under the terms of the Apache License, Version 2.0.
`
