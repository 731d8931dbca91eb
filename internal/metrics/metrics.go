package metrics

const Namespace = "todoshare"
